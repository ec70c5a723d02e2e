package render

// pageTemplate is the Go html/template for the generated public page.
// Section fragments mirror the structure the public scripts re-hydrate:
// each section renders independently and absent data degrades to a
// placeholder comment instead of failing the page.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="/style.css">
</head>
<body>
    <header class="header" id="home">
        <nav class="nav">
            <div class="logo">
                {{if .Header.LogoImage}}<img src="{{.Header.LogoImage}}" alt="logo" class="logo-image">{{end}}
                <span class="logo-text">{{.Header.LogoText}}</span>
            </div>
            <ul class="nav-menu">
{{range $i, $item := .Header.MenuItems}}                <li><a href="{{$item.Link}}" class="nav-link{{if eq $i 0}} active{{end}}">{{$item.Text}}</a></li>
{{end}}            </ul>
        </nav>
    </header>

    <section class="hero">
        <div class="hero-content">
            <h1 class="hero-title">{{.HeroTitle}}</h1>
            <p class="hero-description">{{.Hero.Description}}</p>
            <div class="hero-buttons">
                <a href="{{.Hero.Button1Link}}" class="btn btn-primary">{{.Hero.Button1Text}}</a>
                <a href="{{.Hero.Button2Link}}" class="btn btn-secondary">{{.Hero.Button2Text}}</a>
            </div>
        </div>
    </section>

    <section class="about" id="about">
        <div class="container">
            <h2 class="section-title">About</h2>
            <div class="about-text">
                <p>{{.About.Text1}}</p>
                <p>{{.About.Text2}}</p>
            </div>
        </div>
    </section>

    <section class="portfolio" id="portfolio">
        <div class="container">
            <h2 class="section-title">Portfolio</h2>
            <div class="portfolio-filter">
                <button class="filter-btn active" data-filter="all">All</button>
                <button class="filter-btn" data-filter="web">Web</button>
                <button class="filter-btn" data-filter="app">Apps</button>
                <button class="filter-btn" data-filter="image">Images</button>
                <button class="filter-btn" data-filter="video">Video</button>
                <button class="filter-btn" data-filter="design">Design</button>
            </div>
            <div class="portfolio-grid">
{{if .Portfolio.Items}}{{range .Portfolio.Items}}                <div class="portfolio-item" data-category="{{.Category}}">
                    <div class="portfolio-card">
                        <div class="portfolio-image">
                            <img src="{{.MainImage}}" alt="{{.Title}}">
                        </div>
                        <div class="portfolio-info">
                            <h3 class="portfolio-title">{{.Title}}</h3>
                            <p class="portfolio-description">{{.Description}}</p>
                            <div class="portfolio-tags">
{{range .Tags}}                                <span class="tag">{{.}}</span>
{{end}}                            </div>
                        </div>
                        <div class="portfolio-hover">
                            <div class="portfolio-hover-content">
                                <h3>{{.Title}}</h3>
                                <p>{{if .LongDescription}}{{.LongDescription}}{{else}}{{.Description}}{{end}}</p>
                                <a href="{{if .Link}}{{.Link}}{{else}}#{{end}}" class="btn btn-small">Details</a>
                            </div>
                        </div>
                    </div>
                </div>
{{end}}{{else}}                <!-- No projects yet -->
{{end}}            </div>
        </div>
        <div class="portfolio-bg"></div>
    </section>

    <section class="future" id="future">
        <div class="container">
            <h2 class="section-title">Future projects</h2>
            <div class="timeline">
{{if .Future.Items}}{{range .Future.Items}}                <div class="timeline-item">
                    <div class="timeline-marker"></div>
                    <div class="timeline-content">
                        <div class="timeline-date">{{.Date}}</div>
                        <h3 class="timeline-title">{{.Title}}</h3>
                        <p class="timeline-description">{{.Description}}</p>
                    </div>
                </div>
{{end}}{{else}}                <!-- No plans yet -->
{{end}}            </div>
        </div>
        <div class="future-bg"></div>
    </section>

    <section class="contact" id="contact">
        <div class="container">
            <h2 class="section-title">Contact</h2>
            <div class="contact-info">
                <div class="contact-item">
                    <h3>Email</h3>
                    <p>{{.Contact.Email}}</p>
                </div>
                <div class="contact-item">
                    <h3>Phone</h3>
                    <p>{{.Contact.Phone}}</p>
                </div>
                <div class="contact-item">
                    <h3>Address</h3>
                    <p>{{.Contact.Address}}</p>
                </div>
            </div>
        </div>
    </section>

    <footer class="footer">
        <div class="footer-copyright">
            <p>{{.Footer.Copyright}}</p>
        </div>
    </footer>

    <script src="/main.js"></script>
</body>
</html>
`
