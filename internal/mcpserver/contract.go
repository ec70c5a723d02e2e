package mcpserver

// DocumentFormatContract describes the section documents that LLM
// consumers should follow when reading or saving site content.
const DocumentFormatContract = `# Vitrine Section Document Contract

Site content lives in named JSON documents, one per section. Every
document is a single JSON object; arrays, strings and null are rejected
at the parse boundary.

## Sections

| Section     | Purpose                                              |
|-------------|------------------------------------------------------|
| general     | Site-wide settings: meta title and language          |
| header      | Logo text (optional logo image) and navigation menu items |
| hero        | Landing banner: title (may contain markup spans), description, two buttons |
| about       | About block: two paragraphs, ` + "`" + `text1` + "`" + ` and ` + "`" + `text2` + "`" + ` |
| portfolio   | Project cards: title, category, description, images, tags, technologies, status, link |
| future      | Planned work timeline: items with a free-text date label, title, description |
| contact     | Contact block: email, phone, address                 |
| footer      | Footer copyright line                                |
| features    | Feature flags (never triggers page regeneration)     |

Section names are lowercase kebab-case (` + "`" + `[a-z][a-z0-9-]*` + "`" + `).

## Rules

1. **Saves replace the whole document.** Always read the current
   document first, modify it, and save the full object back.
2. **Portfolio item ` + "`" + `status` + "`" + ` is a status id.** Built-ins are
   ` + "`" + `active` + "`" + `, ` + "`" + `coming-soon` + "`" + ` and ` + "`" + `paused` + "`" + `; custom ids carry a
   ` + "`" + `custom-` + "`" + ` prefix. Unknown ids silently fall back to ` + "`" + `active` + "`" + `
   at render time.
3. **Feature flag values** are ` + "`" + `true` + "`" + `, ` + "`" + `false` + "`" + `, ` + "`" + `"maintenance"` + "`" + `
   or ` + "`" + `"coming-soon"` + "`" + `. Anything else is rejected by consumers.
4. **Hero ` + "`" + `title` + "`" + ` may embed** ` + "`" + `<span class="accent">` + "`" + ` markup; all
   other free text is treated as plain text and escaped when rendered.
5. **Portfolio ` + "`" + `technologies` + "`" + ` entries are objects**, each
   ` + "`" + `{"name": "...", "icon": "..."}` + "`" + ` with ` + "`" + `icon` + "`" + ` optional. Bare strings
   do not decode.
6. **Every save of a non-features section regenerates the public page.**
   A save can succeed while regeneration fails; the document is then on
   disk and the page is stale until the next successful regeneration.

## Example portfolio document

` + "```" + `json
{
  "title": "Portfolio",
  "description": "Selected work",
  "items": [
    {
      "title": "Galleri",
      "category": "web",
      "description": "Photography showcase",
      "image": "/img/galleri.jpg",
      "images": ["/img/galleri.jpg", "/img/galleri-2.jpg"],
      "tags": ["design", "frontend"],
      "technologies": [
        {"name": "Go", "icon": "🐹"},
        {"name": "SQLite"}
      ],
      "status": "active",
      "link": "https://example.com/galleri"
    }
  ]
}
` + "```" + `
`
