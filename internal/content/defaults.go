package content

// Defaults returns the seed document for every required section. These are
// written on first start so that post-startup reads of the required set
// never miss.
func Defaults() map[string]any {
	return map[string]any{
		SectionGeneral: General{
			Title: "My Portfolio",
			Lang:  "en",
		},
		SectionHeader: Header{
			LogoText:  "Shiko studio",
			LogoImage: "assets/img/logo.svg",
			MenuItems: []MenuItem{
				{Text: "Home", Link: "#home"},
				{Text: "About", Link: "#about"},
				{Text: "Portfolio", Link: "#portfolio"},
				{Text: "Future projects", Link: "#future"},
				{Text: "Contact", Link: "#contact"},
			},
		},
		SectionHero: Hero{
			Title:       `Digital <span class="accent">creativity</span> & <span class="accent">innovation</span>`,
			Description: "I build projects at the intersection of art and technology: image generation, video, web and app development.",
			Button1Text: "My work",
			Button1Link: "#portfolio",
			Button2Text: "Get in touch",
			Button2Link: "#contact",
		},
		SectionAbout: About{
			Text1: "I work in digital creativity and technology, building projects that combine art and innovation.",
			Text2: "Working across tools and stacks, I like turning unusual ideas into working things.",
		},
		SectionPortfolio: Portfolio{
			Items: []PortfolioItem{
				{
					Title:           "AI image series",
					Category:        "image",
					Description:     "A series of generated images",
					LongDescription: "An ongoing series of visual work produced with generative models.",
					Image:           "assets/img/icons/placeholder-image.svg",
					Link:            "#",
					Tags:            []string{"AI", "Art", "Design"},
					Status:          "active",
				},
				{
					Title:           "Mobile app",
					Category:        "app",
					Description:     "A cross-platform mobile application",
					LongDescription: "A cross-platform mobile application for iOS and Android.",
					Image:           "assets/img/icons/placeholder-app.svg",
					Link:            "#",
					Tags:            []string{"React Native", "UI/UX", "Mobile"},
					Status:          "active",
				},
				{
					Title:           "Web application",
					Category:        "web",
					Description:     "An interactive web application",
					LongDescription: "A full-featured web application on a modern stack.",
					Image:           "assets/img/icons/placeholder-web.svg",
					Link:            "#",
					Tags:            []string{"Node.js", "CSS", "JavaScript", "HTML"},
					Status:          "active",
				},
			},
		},
		SectionFuture: Future{
			Items: []FutureItem{
				{
					Date:        "Q2 2026",
					Title:       "Generative art study",
					Description: "A series of works driven by algorithmic processes and machine learning.",
				},
				{
					Date:        "Q3 2026",
					Title:       "Data visualization platform",
					Description: "A web platform for building rich visualizations from user data.",
				},
				{
					Date:        "Q4 2026",
					Title:       "Assistant for creative work",
					Description: "An application helping designers and artists with day-to-day tasks.",
				},
			},
		},
		SectionContact: Contact{
			Email:   "hello@example.com",
			Phone:   "+1 (555) 123-45-67",
			Address: "Istanbul, Türkiye",
		},
		SectionFooter: Footer{
			Copyright: "© 2026 My Portfolio. All rights reserved.",
		},
		SectionFeatures: Features{
			"portfolio": FeatureEnabled,
			"about":     FeatureEnabled,
			"future":    FeatureEnabled,
			"contact":   FeatureEnabled,
			"filter":    FeatureEnabled,
			"form":      FeatureEnabled,
		},
	}
}
