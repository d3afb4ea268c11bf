package report

const reportHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>SEO Keyword Gap Report - {{.CompanyName}}</title>
<style>
  :root {
    --primary: #2563eb;
    --danger: #dc2626;
    --warning: #d97706;
    --success: #16a34a;
    --gray-600: #525252;
    --gray-100: #f5f5f5;
  }
  body { font-family: Georgia, serif; margin: 0; color: #171717; }
  main { max-width: 1080px; margin: 0 auto; padding: 32px 16px; }
  h1 { font-size: 2em; margin-bottom: 4px; }
  h2 { margin-top: 48px; border-bottom: 2px solid var(--gray-100); padding-bottom: 8px; }
  .meta { color: var(--gray-600); margin-bottom: 24px; }
  .stats { display: flex; flex-wrap: wrap; gap: 16px; }
  .stat-card { background: var(--gray-100); border-radius: 8px; padding: 16px 24px; min-width: 140px; }
  .stat-number { font-size: 1.8em; font-weight: 700; }
  .stat-label { color: var(--gray-600); font-size: 0.9em; }
  table { border-collapse: collapse; width: 100%; margin-top: 16px; }
  th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid var(--gray-100); }
  th { background: var(--gray-100); }
  .desc { color: var(--gray-600); }
  .ok { color: var(--success); }
  .bad { color: var(--danger); }
</style>
</head>
<body>
<main>
  <h1>SEO Keyword Gap Analysis</h1>
  <div class="meta">
    {{.CompanyName}} ({{.TargetDomain}}) &middot; {{.Location}} &middot;
    generated {{.GeneratedAt.Format "2006-01-02 15:04"}}
  </div>

  <section id="summary">
    <div class="stats">
      <div class="stat-card"><div class="stat-number">{{.Summary.TotalGaps}}</div><div class="stat-label">Total Gaps</div></div>
      <div class="stat-card"><div class="stat-number">{{.Summary.TopSelected}}</div><div class="stat-label">Top Keywords Selected</div></div>
      <div class="stat-card"><div class="stat-number" style="color: var(--danger);">{{.Summary.HighOpportunity}}</div><div class="stat-label">High Opportunity</div></div>
      <div class="stat-card"><div class="stat-number" style="color: var(--warning);">{{.Summary.QuickWins}}</div><div class="stat-label">Quick Wins</div></div>
      <div class="stat-card"><div class="stat-number">{{.Summary.ContentGaps}}</div><div class="stat-label">Content Gaps</div></div>
      <div class="stat-card"><div class="stat-number">{{.Summary.ProductGaps}}</div><div class="stat-label">Product Gaps</div></div>
    </div>
    {{if .Summary.TopKeywords}}
    <h3>Top priorities</h3>
    <ul>
      {{range .Summary.TopKeywords}}
      <li><strong>{{.Keyword}}</strong> &mdash; {{.SearchVolume}} searches/mo, competitor at #{{.Position}}</li>
      {{end}}
    </ul>
    {{end}}
  </section>

  {{if .DomainStats}}
  <section id="domains">
    <h2>Domain Comparison</h2>
    <table>
      <tr><th>Domain</th><th>Organic Keywords</th><th>Est. Traffic</th><th>Referring Domains</th></tr>
      {{range .DomainStats}}
      <tr>
        <td>{{.Domain}}</td>
        <td>{{.OrganicKeywords}}</td>
        <td>{{fmtFloat .OrganicTraffic}}</td>
        <td>{{.ReferringDomains}}</td>
      </tr>
      {{end}}
    </table>
  </section>
  {{end}}

  {{range .Categories}}
  <section id="{{.Key}}">
    <h2>{{.Title}} ({{.Total}})</h2>
    <p class="desc">{{.Description}}</p>
    {{if .Rows}}
    <table>
      <tr><th>Keyword</th><th>Volume</th><th>Competitor</th><th>Position</th><th>Difficulty</th><th>Intent</th></tr>
      {{range .Rows}}
      <tr>
        <td>{{.Keyword}}</td>
        <td>{{.SearchVolume}}</td>
        <td>{{.Competitor}}</td>
        <td>{{.Position}}</td>
        <td>{{fmtFloat .Difficulty}}</td>
        <td>{{.Intent}}</td>
      </tr>
      {{end}}
    </table>
    {{else}}
    <p class="desc">No keywords in this category.</p>
    {{end}}
  </section>
  {{end}}

  {{if .Sitemap}}
  <section id="sitemap">
    <h2>Sitemap Structure</h2>
    <p class="desc">{{.Sitemap.TotalURLs}} URLs indexed from {{.SitemapURL}}</p>
    <table>
      <tr><th>Page Type</th><th>Count</th></tr>
      {{range $type, $count := .Sitemap.Categorization}}
      <tr><td>{{title $type}}</td><td>{{$count}}</td></tr>
      {{end}}
    </table>
    <p>Fresh URLs (last 90 days): {{.Sitemap.Freshness.FreshCount}}
      {{if .Sitemap.Freshness.HasDates}}({{fmtPct .Sitemap.Freshness.FreshnessPercentage}}){{else}}(no lastmod dates published){{end}}
    </p>
  </section>
  {{end}}

  {{if .Social}}
  <section id="social">
    <h2>Social Presence</h2>
    <table>
      <tr><th>Platform</th><th>Status</th><th>Profile</th></tr>
      {{range .Social}}
      <tr>
        <td>{{title .Platform}}</td>
        {{if .Profile.Found}}
        <td class="ok">Found</td><td><a href="{{.Profile.URL}}">{{.Profile.URL}}</a></td>
        {{else}}
        <td class="bad">Missing</td><td>&mdash;</td>
        {{end}}
      </tr>
      {{end}}
    </table>
  </section>
  {{end}}

  {{if .LocalIntl}}
  <section id="local-intl">
    <h2>Local &amp; International Signals</h2>
    <table>
      <tr><th>Signal</th><th>Status</th></tr>
      <tr><td>Hreflang tags</td><td>{{len .LocalIntl.International.HreflangTags}} found</td></tr>
      <tr><td>Content-Language meta</td><td>{{if .LocalIntl.International.ContentLanguage}}{{.LocalIntl.International.ContentLanguage}}{{else}}not set{{end}}</td></tr>
      <tr><td>Phone number</td><td>{{if .LocalIntl.Local.PhoneFound}}<span class="ok">found</span>{{else}}<span class="bad">missing</span>{{end}}</td></tr>
      <tr><td>Address</td><td>{{if .LocalIntl.Local.AddressFound}}<span class="ok">found</span>{{else}}<span class="bad">missing</span>{{end}}</td></tr>
      <tr><td>Map embed</td><td>{{if .LocalIntl.Local.MapEmbed}}<span class="ok">found</span>{{else}}<span class="bad">missing</span>{{end}}</td></tr>
    </table>
  </section>
  {{end}}

  {{if .Geo}}
  <section id="geo">
    <h2>Structured Data (JSON-LD)</h2>
    <table>
      <tr><th>Page</th><th>Schemas</th><th>Status</th></tr>
      {{$geo := .Geo}}
      {{range .GeoKeys}}
      {{$audit := index $geo .}}
      <tr>
        <td>{{title .}}</td>
        <td>{{len $audit.Schemas}}</td>
        <td>{{if $audit.Error}}<span class="bad">{{$audit.Error}}</span>{{else if $audit.Schemas}}<span class="ok">present</span>{{else}}<span class="bad">missing</span>{{end}}</td>
      </tr>
      {{end}}
    </table>
  </section>
  {{end}}

  {{if .Performance}}
  <section id="performance">
    <h2>Page Performance</h2>
    <table>
      <tr><th>URL</th><th>Device</th><th>Score</th><th>LCP (s)</th><th>FID (ms)</th><th>CLS</th></tr>
      {{range .Performance}}
      <tr>
        <td>{{.URL}}</td>
        <td>{{.Device}}</td>
        {{if .Error}}
        <td colspan="4" class="bad">{{.Error}}</td>
        {{else}}
        <td>{{fmtFloat .PerformanceScore}}</td>
        <td>{{fmtFloat .LCP}}</td>
        <td>{{fmtFloat .FID}}</td>
        <td>{{fmtFloat .CLS}}</td>
        {{end}}
      </tr>
      {{end}}
    </table>
  </section>
  {{end}}

  <footer class="meta" style="margin-top: 48px;">
    API cost for this run: ${{fmtFloat .Summary.TotalCost}}
  </footer>
</main>
</body>
</html>
`
