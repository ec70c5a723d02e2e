package content

// TechPreset is one entry of the static technology reference list. The
// category groups presets in the picker UI and is unrelated to portfolio
// categories.
type TechPreset struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

// Technology returns the preset as a portfolio item technology.
func (p TechPreset) Technology() Technology {
	return Technology{Name: p.Name, Icon: p.Icon}
}

// PresetTechnologies is the full quick-add reference list, grouped by
// category.
var PresetTechnologies = []TechPreset{
	{Name: "HTML", Icon: "🌐", Category: "frontend"},
	{Name: "CSS", Icon: "🎨", Category: "frontend"},
	{Name: "JavaScript", Icon: "⚡", Category: "frontend"},
	{Name: "React", Icon: "⚛️", Category: "frontend"},
	{Name: "Vue.js", Icon: "💚", Category: "frontend"},
	{Name: "Angular", Icon: "🅰️", Category: "frontend"},
	{Name: "TypeScript", Icon: "📘", Category: "frontend"},
	{Name: "Sass", Icon: "💗", Category: "frontend"},
	{Name: "Tailwind", Icon: "🎯", Category: "frontend"},

	{Name: "Node.js", Icon: "🟢", Category: "backend"},
	{Name: "Python", Icon: "🐍", Category: "backend"},
	{Name: "PHP", Icon: "🐘", Category: "backend"},
	{Name: "Java", Icon: "☕", Category: "backend"},
	{Name: "C#", Icon: "💎", Category: "backend"},
	{Name: "Go", Icon: "🐹", Category: "backend"},
	{Name: "Rust", Icon: "🦀", Category: "backend"},

	{Name: "MongoDB", Icon: "🍃", Category: "database"},
	{Name: "MySQL", Icon: "🐬", Category: "database"},
	{Name: "PostgreSQL", Icon: "🐘", Category: "database"},
	{Name: "Redis", Icon: "🔴", Category: "database"},
	{Name: "SQLite", Icon: "💽", Category: "database"},

	{Name: "React Native", Icon: "📱", Category: "mobile"},
	{Name: "Flutter", Icon: "💙", Category: "mobile"},
	{Name: "Swift", Icon: "🍎", Category: "mobile"},
	{Name: "Kotlin", Icon: "🤖", Category: "mobile"},

	{Name: "Docker", Icon: "🐳", Category: "tools"},
	{Name: "Git", Icon: "📚", Category: "tools"},
	{Name: "Webpack", Icon: "📦", Category: "tools"},
	{Name: "Vite", Icon: "⚡", Category: "tools"},
	{Name: "Firebase", Icon: "🔥", Category: "tools"},

	{Name: "Figma", Icon: "🎨", Category: "design"},
	{Name: "Photoshop", Icon: "🖼️", Category: "design"},
	{Name: "Blender", Icon: "🌀", Category: "design"},
	{Name: "After Effects", Icon: "✨", Category: "design"},

	{Name: "TensorFlow", Icon: "🧠", Category: "ai"},
	{Name: "PyTorch", Icon: "🔥", Category: "ai"},
	{Name: "OpenAI", Icon: "🤖", Category: "ai"},
	{Name: "Stable Diffusion", Icon: "🌊", Category: "ai"},
}

// popularTechNames selects the presets shown in the quick-add grid.
var popularTechNames = map[string]struct{}{
	"HTML": {}, "CSS": {}, "JavaScript": {}, "React": {},
	"Node.js": {}, "Python": {}, "MongoDB": {}, "Docker": {},
	"Git": {}, "Figma": {}, "Photoshop": {}, "TypeScript": {},
}

const popularTechLimit = 12

// PopularTechnologies returns the quick-add shortlist: the popular subset
// of PresetTechnologies in list order, capped at twelve entries.
func PopularTechnologies() []TechPreset {
	out := make([]TechPreset, 0, popularTechLimit)
	for _, p := range PresetTechnologies {
		if _, ok := popularTechNames[p.Name]; !ok {
			continue
		}
		out = append(out, p)
		if len(out) == popularTechLimit {
			break
		}
	}
	return out
}
