package site

// layoutTemplate wraps every page. The root class carries the theme marker;
// data-scroll-y tells the page script where to put the viewport.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en" class="{{.RootClass}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{if .Title}}{{.Title}} · {{end}}{{.Meta.Title}}</title>
<meta name="description" content="{{.Meta.Description}}">
<link rel="stylesheet" href="{{.Base}}static/site.css">
</head>
<body class="page page-{{.View}}" data-view="{{.View}}" data-theme="{{.Theme}}" data-scroll-y="{{.ScrollY}}">
{{template "content" .}}
{{if .Static}}<script>window.__static = true; window.__slides = {{.Slides}}; window.__slide = {{.Slide}};</script>
{{end}}<script src="{{.Base}}static/site.js"></script>
</body>
</html>{{end}}

{{define "animated"}}<span class="animated {{.Style}}"><span class="animated-ghost">{{.Text}}{{if .Arrow}}<i class="arrow">→</i>{{end}}</span><span class="animated-out">{{.Text}}</span><span class="animated-in">{{.Text}}{{if .Arrow}}<i class="arrow">→</i>{{end}}</span></span>{{end}}

{{define "theme-switch"}}{{if .Static}}<button type="button" class="theme-switch" aria-label="Toggle theme" data-theme-toggle><span class="knob"></span></button>{{else}}<form method="post" action="/theme" class="inline"><button type="submit" class="theme-switch{{if .Dark}} on{{end}}" aria-label="Toggle theme" aria-pressed="{{.Dark}}"><span class="knob"></span></button></form>{{end}}{{end}}

{{define "header"}}<header class="site-header">
<a class="mark" href="{{link .Base "home" ""}}"><span class="ring"></span>{{.Meta.Name}}</a>
<nav>{{range .Nav}}<a href="{{.Href}}"{{if .Active}} aria-current="page"{{end}}>{{template "animated" (animated .Label "nav-link")}}</a>{{end}}</nav>
{{template "theme-switch" .}}
</header>{{end}}

{{define "notice"}}{{with .Notice}}<p class="notice" role="status">{{.}}</p>{{end}}{{end}}

{{define "cta"}}<a class="cta" href="{{link .Base "contact" ""}}">{{template "animated" (animatedArrow "Let's work together" "cta-text")}}</a>{{end}}

{{define "footer"}}<footer class="site-footer">
{{template "cta" .}}
<div class="footer-columns">
<ul><li><a href="{{link .Base "home" ""}}">{{template "animated" (animated "Portfolio" "footer-link")}}</a></li><li><a href="{{link .Base "about" ""}}">{{template "animated" (animated "About" "footer-link")}}</a></li><li><a href="{{link .Base "contact" ""}}">{{template "animated" (animated "Contact" "footer-link")}}</a></li></ul>
<ul><li><a href="{{link .Base "work" ""}}">{{template "animated" (animated "Work" "footer-link")}}</a></li><li><a href="{{link .Base "blog" ""}}">{{template "animated" (animated "Blog" "footer-link")}}</a></li></ul>
<ul><li><a href="{{link .Base "not-found" ""}}">{{template "animated" (animated "404" "footer-link")}}</a></li></ul>
<ul class="social">{{range .Social}}<li><a href="{{.URL}}" rel="noopener">{{template "animated" (animated .Name "footer-link")}}</a></li>{{end}}</ul>
</div>
<p class="copyright">© {{.Year}} {{.Meta.Name}}</p>
</footer>{{end}}
`

const homeTemplate = `{{define "content"}}<main class="split">
<section class="hero">
{{template "header" .}}
{{with .Hero}}<figure class="slide"><img src="{{.Current}}" alt="Hero image {{add .Index 1}} of {{len .Slides}}"></figure>
{{if $.Static}}<div class="carousel-controls"><button type="button" data-carousel="prev" aria-label="Previous slide">←</button><button type="button" data-carousel="next" aria-label="Next slide">→</button></div>
{{else}}<div class="carousel-controls"><form method="post" action="/carousel/prev" class="inline"><button type="submit" aria-label="Previous slide">←</button></form><form method="post" action="/carousel/next" class="inline"><button type="submit" aria-label="Next slide">→</button></form></div>
<ol class="dots">{{range $i, $src := .Slides}}<li><form method="post" action="/carousel/{{$i}}" class="inline"><button type="submit" class="dot{{if eq $i $.Hero.Index}} active{{end}}" aria-label="Slide {{add $i 1}}"></button></form></li>{{end}}</ol>
{{end}}{{end}}
</section>
<section class="intro">
<h1>Capturing moments, telling stories.</h1>
<p>Commercial and editorial photography by {{.Meta.Name}}.</p>
<a class="tag" href="{{link .Base "work" ""}}">{{template "animated" (animatedArrow "View work" "tag-text")}}</a>
<ul class="work-strip">{{range $i, $w := .Works}}{{if lt $i 4}}<li><a href="{{link $.Base "work" ""}}?item={{$i}}"><img src="{{$w.Image}}" alt="{{$w.Name}}"><span>{{$w.Name}}</span></a></li>{{end}}{{end}}</ul>
<a class="tag" href="{{link .Base "blog" ""}}">{{template "animated" (animatedArrow "Read the journal" "tag-text")}}</a>
{{template "footer" .}}
</section>
</main>{{end}}`

const workTemplate = `{{define "content"}}<main class="split">
<section class="hero">
{{template "header" .}}
{{with .Active}}<figure class="slide"><img src="{{.Image}}" alt="{{.Name}}"><figcaption>{{.Name}} · {{.Type}} · {{.Year}}</figcaption></figure>{{end}}
</section>
<section class="index">
<h1>Work</h1>
<ol class="work-list">{{range $i, $w := .Works}}<li{{if eq $i $.ActiveIndex}} class="active"{{end}}><a href="{{link $.Base "work" ""}}?item={{$i}}">{{template "animated" (animated $w.Name "work-name")}}<span class="type">{{$w.Type}}</span><span class="year">{{$w.Year}}</span></a></li>{{end}}</ol>
{{template "footer" .}}
</section>
</main>{{end}}`

const aboutTemplate = `{{define "content"}}<main class="split">
<section class="hero">
{{template "header" .}}
<figure class="slide"><img src="{{.AboutImage}}" alt="Portrait of {{.Meta.Name}}"></figure>
</section>
<section class="about">
<h1>About</h1>
<p>A photographer drawn to light, candid moments and the quiet details of city and nature.</p>
{{template "cta" .}}
<h2>Clients</h2>
<ul class="clients">{{range .Clients}}<li>{{.}}</li>{{end}}</ul>
<h2>Exhibitions</h2>
<ul class="credits">{{range .Exhibitions}}<li><span>{{.Title}}</span><span>{{.Year}}</span></li>{{end}}</ul>
<h2>Awards</h2>
<ul class="credits">{{range .Awards}}<li><span>{{.Title}}</span><span>{{.Year}}</span></li>{{end}}</ul>
{{template "footer" .}}
</section>
</main>{{end}}`

const contactTemplate = `{{define "content"}}<main class="split">
<section class="hero">
{{template "header" .}}
<figure class="slide"><img src="{{.ContactImage}}" alt="Studio"></figure>
</section>
<section class="contact">
<h1>Contact</h1>
{{template "notice" .}}
<form method="post" action="/contact" class="contact-form">
<label>Name<input type="text" name="name" value="{{.Form.Name}}" required></label>
<label>Email<input type="email" name="email" value="{{.Form.Email}}" required></label>
<label>Message<textarea name="message" rows="6" required>{{.Form.Message}}</textarea></label>
<button type="submit">{{template "animated" (animatedArrow "Send message" "cta-text")}}</button>
</form>
<ul class="social">{{range .Social}}<li><a href="{{.URL}}" rel="noopener">{{.Name}}</a></li>{{end}}</ul>
{{template "footer" .}}
</section>
</main>{{end}}`

const blogTemplate = `{{define "content"}}<main class="stack">
{{with .Featured}}<section class="featured" style="background-image:url('{{.Image}}')">
{{template "header" $}}
<div class="featured-card"><h1>{{.Title}}</h1><p>{{.Excerpt}}</p><a class="tag" href="{{link $.Base "blog-single" .Slug}}">{{template "animated" (animatedArrow "Read Article" "tag-text")}}</a></div>
</section>{{else}}{{template "header" .}}{{end}}
<section class="articles">
<h2>Blog</h2>
<p>Read my latest articles</p>
<ul class="article-grid">{{range .Articles}}<li><a href="{{link $.Base "blog-single" .Slug}}"><h3>{{.Title}}</h3><p>{{.Excerpt}}</p></a></li>{{end}}</ul>
</section>
<section class="stories">
<ul class="story-grid">{{range .Stories}}<li class="story{{if .Inverted}} inverted{{end}}"><a href="{{link $.Base "blog-single" $.FeaturedSlug}}"><img src="{{.Image}}" alt=""><h3>{{.Title}}</h3></a></li>{{end}}</ul>
</section>
<a class="button" href="{{link .Base "home" ""}}">Back Home</a>
{{template "footer" .}}
</main>{{end}}`

const blogSingleTemplate = `{{define "content"}}<main class="stack">
{{template "header" .}}
{{with .Post}}<article class="post">
<h1>{{.Title}}</h1>
{{if .Date}}<dl class="meta"><div><dt>Category</dt><dd>{{.Category}}</dd></div><div><dt>Reading Time</dt><dd>{{.ReadingTime}}</dd></div><div><dt>Date</dt><dd>{{.Date}}</dd></div></dl>{{end}}
{{.HTML}}
</article>{{end}}
<a class="button" href="{{link .Base "blog" ""}}">← Back to Blog</a>
{{template "footer" .}}
</main>{{end}}`

const notFoundTemplate = `{{define "content"}}<main class="full-bleed" style="background-image:url('{{.NotFoundImage}}')">
<a class="corner top-left" href="{{link .Base "home" ""}}">← Back to Homepage</a>
<span class="corner bottom-right">Error 404 - Page not found</span>
</main>{{end}}`

// pageScript restores the viewport, reports scroll offsets and, in static
// exports, drives the theme switch and carousel client side.
const pageScript = `(function () {
  var body = document.body;
  window.scrollTo(0, parseInt(body.getAttribute("data-scroll-y") || "0", 10));
  if (window.__static) {
    var root = document.documentElement;
    document.querySelectorAll("[data-theme-toggle]").forEach(function (b) {
      b.addEventListener("click", function () { root.classList.toggle("dark"); });
    });
    var slides = window.__slides || [], i = window.__slide || 0, img = document.querySelector(".hero .slide img");
    document.querySelectorAll("[data-carousel]").forEach(function (b) {
      b.addEventListener("click", function () {
        var n = slides.length; if (!n || !img) { return; }
        i = b.getAttribute("data-carousel") === "next" ? (i + 1) % n : (i - 1 + n) % n;
        img.src = slides[i];
      });
    });
    return;
  }
  var timer;
  window.addEventListener("scroll", function () {
    clearTimeout(timer);
    timer = setTimeout(function () {
      navigator.sendBeacon("/scroll", new URLSearchParams({ y: String(Math.round(window.scrollY)) }));
    }, 200);
  });
})();`

const cssContent = `:root{--bg:#ffffff;--bg-muted:#f4f4f4;--bg-muted-2:#e9e9e9;--bg-primary:#111111;--text:#111111;--text-muted:#6b6b6b;--text-inverse:#ffffff}
html.dark{--bg:#0e0e0e;--bg-muted:#1a1a1a;--bg-muted-2:#242424;--bg-primary:#f2f2f2;--text:#f2f2f2;--text-muted:#9a9a9a;--text-inverse:#111111}
*{box-sizing:border-box}
body{margin:0;background:var(--bg);color:var(--text);font-family:Inter,system-ui,sans-serif;-webkit-font-smoothing:antialiased;transition:background-color .3s,color .3s}
a{color:inherit;text-decoration:none}
img{display:block;max-width:100%;height:auto}
.inline{display:inline}
.split{display:flex;gap:12px;padding:12px;min-height:100vh}
.split>section{flex:1;min-width:0}
.hero{position:sticky;top:12px;height:calc(100vh - 24px);background:var(--bg-muted-2);border-radius:12px;overflow:hidden}
.hero .slide,.hero .slide img{width:100%;height:100%;margin:0;object-fit:cover}
.site-header{position:absolute;top:0;left:0;z-index:30;display:flex;align-items:center;gap:32px;padding:16px 24px;background:var(--bg);border-bottom-right-radius:32px}
.stack .site-header{position:static}
.mark{display:flex;align-items:center;gap:10px;font-weight:700;font-size:14px}
.ring{width:18px;height:18px;border:4px solid var(--text);border-radius:50%}
.site-header nav{display:flex;gap:24px;font-size:12px;font-weight:500}
.theme-switch{position:relative;width:32px;height:16px;border:0;border-radius:999px;background:var(--bg-muted-2);cursor:pointer}
.theme-switch .knob{position:absolute;top:4px;left:4px;width:8px;height:8px;border-radius:50%;background:var(--text);transition:left .3s}
html.dark .theme-switch .knob{left:20px}
.animated{position:relative;display:inline-flex;overflow:hidden}
.animated-ghost{opacity:0}
.animated-out,.animated-in{position:absolute;inset:0;display:flex;gap:4px;transition:transform .5s cubic-bezier(.25,1,.5,1)}
.animated-in{transform:translateY(100%)}
a:hover .animated-out,button:hover .animated-out{transform:translateY(-100%)}
a:hover .animated-in,button:hover .animated-in{transform:translateY(0)}
.carousel-controls{position:absolute;bottom:24px;right:24px;display:flex;gap:8px}
.carousel-controls button,.dot{cursor:pointer;border:0;border-radius:999px;background:var(--bg);color:var(--text);padding:8px 12px}
.dots{position:absolute;bottom:24px;left:24px;display:flex;gap:6px;list-style:none;margin:0;padding:0}
.dot{width:8px;height:8px;padding:0;opacity:.5}.dot.active{opacity:1}
.cta{display:flex;justify-content:space-between;padding:24px;border-radius:12px;background:var(--bg-primary);color:var(--text-inverse)}
.notice{padding:12px 16px;border-radius:8px;background:var(--bg-muted)}
.work-list{list-style:none;padding:0}.work-list li{display:flex;justify-content:space-between;padding:12px 0;border-bottom:1px solid var(--bg-muted-2)}
.work-list li.active{font-weight:600}
.credits li{display:flex;justify-content:space-between}
.contact-form{display:flex;flex-direction:column;gap:16px}
.contact-form input,.contact-form textarea{width:100%;padding:12px;border:1px solid var(--bg-muted-2);border-radius:8px;background:var(--bg-muted);color:var(--text)}
.featured{min-height:80vh;background-size:cover;background-position:center;border-radius:12px;margin:12px;position:relative}
.featured-card{position:absolute;bottom:24px;left:24px;max-width:600px;padding:24px;border-radius:12px;background:var(--bg)}
.article-grid,.story-grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(280px,1fr));gap:24px;list-style:none;padding:0}
.story{background:var(--bg-primary);color:var(--text-inverse);border-radius:12px;overflow:hidden}
.story.inverted{background:var(--text);color:var(--bg)}
.post{max-width:720px;margin:0 auto;padding:48px 12px;line-height:1.6}
.meta{display:flex;gap:32px}.meta dt{color:var(--text-muted)}.meta dd{margin:0}
.button{display:inline-block;margin:24px 12px;padding:12px 24px;border-radius:8px;background:var(--bg-primary);color:var(--text-inverse)}
.full-bleed{position:relative;min-height:100vh;margin:12px;border-radius:12px;background-size:cover;background-position:center}
.corner{position:absolute;padding:16px 24px;background:var(--bg)}
.top-left{top:0;left:0;border-bottom-right-radius:32px}.bottom-right{bottom:0;right:0;border-top-left-radius:32px}
.site-footer{margin-top:48px;padding:24px;border-radius:12px;background:var(--bg-primary);color:var(--text-inverse)}
.footer-columns{display:flex;gap:48px}.footer-columns ul{list-style:none;padding:0}
@media (max-width:1024px){.split{flex-direction:column}.hero{position:relative;top:0;height:auto;min-height:500px}}
`
