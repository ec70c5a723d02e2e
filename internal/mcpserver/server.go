// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes site content tools for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/shikostudio/vitrine/internal/apperr"
	"github.com/shikostudio/vitrine/internal/content"
	"github.com/shikostudio/vitrine/internal/store"
)

// Server wraps the MCP server with content tools.
type Server struct {
	mcp   *server.MCPServer
	svc   *content.Service
	store store.Provider
	regen content.Regenerator
}

// New creates a new MCP server with all content tools registered.
// regen may be nil; regenerate_site then reports it as unavailable.
func New(svc *content.Service, st store.Provider, regen content.Regenerator) *Server {
	s := &Server{svc: svc, store: st, regen: regen}

	s.mcp = server.NewMCPServer(
		"Vitrine",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_sections",
		mcp.WithDescription("List the content sections present on disk."),
	), s.listSections)

	s.mcp.AddTool(mcp.NewTool("read_section",
		mcp.WithDescription("Read the JSON document of a content section."),
		mcp.WithString("section", mcp.Required(), mcp.Description("Section name (e.g. hero, portfolio)")),
	), s.readSection)

	s.mcp.AddTool(mcp.NewTool("save_section",
		mcp.WithDescription("Replace a section document wholesale. The document MUST be a "+
			"single JSON object following the document contract. Read the contract first via "+
			"the get_document_contract tool or the vitrine://document-format resource. "+
			"Saving any section except features regenerates the public page."),
		mcp.WithString("section", mcp.Required(), mcp.Description("Section name to save")),
		mcp.WithString("document", mcp.Required(), mcp.Description("Full JSON document replacing the current one")),
	), s.saveSection)

	s.mcp.AddTool(mcp.NewTool("regenerate_site",
		mcp.WithDescription("Regenerate the public page from the current section documents."),
	), s.regenerateSite)

	s.mcp.AddTool(mcp.NewTool("get_document_contract",
		mcp.WithDescription("Returns the canonical section document contract. "+
			"Call this before saving sections to ensure correct structure."),
	), s.getDocumentContract)

	// Resource: document format contract.
	s.mcp.AddResource(
		mcp.NewResource("vitrine://document-format", "Section Document Contract",
			mcp.WithResourceDescription("Canonical JSON document format for every content section."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readDocumentFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listSections(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sections, err := s.store.List()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(sections) == 0 {
		return mcp.NewToolResultText("no sections on disk"), nil
	}
	return mcp.NewToolResultText(strings.Join(sections, "\n")), nil
}

func (s *Server) readSection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section, err := req.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := s.svc.Get(ctx, section)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("not found: %s", section)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(doc)), nil
}

func (s *Server) saveSection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section, err := req.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	document, err := req.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := s.svc.Save(ctx, section, []byte(document))
	if err != nil {
		if res != nil && res.Saved {
			return mcp.NewToolResultText(fmt.Sprintf(
				"saved: %s (page regeneration failed: %v; the page is stale)", section, err)), nil
		}
		if errors.Is(err, apperr.ErrMalformed) {
			return mcp.NewToolResultError("document must be a single JSON object"), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	if res.Regenerated {
		return mcp.NewToolResultText(fmt.Sprintf("saved: %s (page regenerated)", section)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("saved: %s", section)), nil
}

func (s *Server) regenerateSite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.regen == nil {
		return mcp.NewToolResultError("no page renderer configured"), nil
	}
	if err := s.regen.Regenerate(ctx); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("page regenerated"), nil
}

func (s *Server) getDocumentContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(DocumentFormatContract), nil
}

func (s *Server) readDocumentFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "vitrine://document-format",
			MIMEType: "text/markdown",
			Text:     DocumentFormatContract,
		},
	}, nil
}
