package site

// pageTemplate is the Go html/template for the single guide page. Each
// searchable block carries a data-search attribute holding its flattened
// lower-cased content; script.js filters on it through the search API.
const pageTemplate = `<!DOCTYPE html>
<html lang="ko" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="style.css">
  <link rel="manifest" href="manifest.webmanifest">
</head>
<body>
  <header class="top-bar">
    <h1 class="site-title">{{.Title}}</h1>
    <div class="search-bar">
      <input type="text" id="search-input" placeholder="검색..." autocomplete="off">
      <div class="search-suggestions" id="search-suggestions" hidden></div>
    </div>
    <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">◐</button>
  </header>
  <div class="offline-indicator" id="offline-indicator" hidden>오프라인 모드</div>
  <main class="content">
    <div class="no-results" id="no-results" hidden>검색 결과가 없습니다</div>
{{range .Sections}}    <section class="guide-section" id="section-{{.ID}}" data-section="{{.ID}}">
      <h2>{{.Label}}</h2>
{{range .Blocks}}      <div class="searchable" data-id="{{.ID}}"{{if .SearchText}} data-search="{{.SearchText}}"{{end}}>
{{.HTML}}
      </div>
{{end}}    </section>
{{end}}  </main>
  <button class="back-to-top" id="back-to-top" aria-label="Back to top">↑</button>
  <script src="script.js"></script>
</body>
</html>`

// cssContent is the stylesheet for the guide page.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-card: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --tip: #e7f5ff;
  --caution: #fff4e6;
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-card: #1f2030;
  --text: #c0caf5;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --tip: #1a2b3e;
  --caution: #3e2b1a;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: -apple-system, "Apple SD Gothic Neo", "Noto Sans KR", sans-serif;
  background: var(--bg);
  color: var(--text);
}

.top-bar {
  position: sticky;
  top: 0;
  display: flex;
  align-items: center;
  gap: 1rem;
  padding: 0.75rem 1rem;
  background: var(--bg);
  border-bottom: 1px solid var(--border);
}

.site-title { font-size: 1.1rem; margin: 0; flex-shrink: 0; }

.search-bar { position: relative; flex: 1; max-width: 420px; }

#search-input {
  width: 100%;
  padding: 0.5rem 0.75rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg-card);
  color: var(--text);
}

.search-suggestions {
  position: absolute;
  top: 100%;
  left: 0;
  right: 0;
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 6px;
  z-index: 10;
}

.search-suggestions button {
  display: block;
  width: 100%;
  padding: 0.4rem 0.75rem;
  border: none;
  background: none;
  color: var(--text);
  text-align: left;
  cursor: pointer;
}

.theme-toggle, .back-to-top {
  border: 1px solid var(--border);
  background: var(--bg-card);
  color: var(--text);
  border-radius: 6px;
  padding: 0.4rem 0.6rem;
  cursor: pointer;
}

.offline-indicator {
  padding: 0.4rem 1rem;
  background: var(--caution);
  text-align: center;
  font-size: 0.85rem;
}

.content { max-width: 860px; margin: 0 auto; padding: 1rem; }

.guide-section { margin-bottom: 2rem; }

.day-card, .schedule-card, .luggage-card, .weather-card, .checklist-entry {
  background: var(--bg-card);
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 1rem;
  margin-bottom: 0.75rem;
}

.day-header { display: flex; align-items: baseline; gap: 0.75rem; }
.day-number { color: var(--accent); font-weight: 700; }
.day-date, .day-route { color: var(--text-muted); font-size: 0.9rem; }
.day-items { list-style: none; padding: 0; }
.day-items li { display: flex; gap: 0.75rem; padding: 0.25rem 0; }
.item-time { color: var(--accent); min-width: 4rem; }

.day-memo { border-radius: 6px; padding: 0.6rem 0.8rem; margin-top: 0.5rem; }
.memo-tip { background: var(--tip); }
.memo-caution { background: var(--caution); }

.checklist-toggle {
  width: 100%;
  border: none;
  background: none;
  color: var(--text);
  font-size: 1rem;
  text-align: left;
  cursor: pointer;
}

.checklist-entry:not(.open) .checklist-items { display: none; }
.checklist-items { list-style: none; padding: 0.5rem 0 0; }

.cost-table { width: 100%; border-collapse: collapse; }
.cost-table td { border-bottom: 1px solid var(--border); padding: 0.5rem; }

.contact-list { list-style: none; padding: 0; }
.contact-list li { display: flex; justify-content: space-between; padding: 0.4rem 0; }
.contact-list a { color: var(--accent); }

.no-results { text-align: center; color: var(--text-muted); padding: 2rem; }

.back-to-top { position: fixed; right: 1rem; bottom: 1rem; }

.hidden-by-search { display: none; }
`

// jsContent is the client script: debounced search against the API,
// suggestion dropdown, accordion toggling, theme toggle, offline indicator.
const jsContent = `(function () {
  var input = document.getElementById('search-input');
  var suggestions = document.getElementById('search-suggestions');
  var noResults = document.getElementById('no-results');
  var timer = null;

  function applyResult(res) {
    document.querySelectorAll('.searchable').forEach(function (el) {
      el.classList.remove('hidden-by-search');
    });
    document.querySelectorAll('.guide-section').forEach(function (el) {
      el.classList.remove('hidden-by-search');
    });
    noResults.hidden = true;
    if (res.reset) return;

    res.hidden_items.forEach(function (id) {
      var el = document.querySelector('[data-id="' + id + '"]');
      if (el) el.classList.add('hidden-by-search');
    });
    res.hidden_sections.forEach(function (id) {
      var el = document.querySelector('[data-section="' + id + '"]');
      if (el) el.classList.add('hidden-by-search');
    });
    res.expand_categories.forEach(function (cat) {
      var el = document.querySelector('[data-category="' + cat + '"]');
      if (el) el.classList.add('open');
    });
    noResults.hidden = !res.no_results;
  }

  function runSearch(q) {
    fetch('/api/search', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ query: q })
    }).then(function (r) { return r.json(); }).then(applyResult);
  }

  function showSuggestions(partial) {
    fetch('/api/history?q=' + encodeURIComponent(partial))
      .then(function (r) { return r.json(); })
      .then(function (entries) {
        suggestions.innerHTML = '';
        if (!entries || entries.length === 0) { suggestions.hidden = true; return; }
        entries.forEach(function (q) {
          var btn = document.createElement('button');
          btn.textContent = q;
          btn.addEventListener('mousedown', function () {
            input.value = q;
            runSearch(q);
            suggestions.hidden = true;
          });
          suggestions.appendChild(btn);
        });
        suggestions.hidden = false;
      });
  }

  input.addEventListener('input', function () {
    clearTimeout(timer);
    var q = input.value;
    timer = setTimeout(function () { runSearch(q); }, 300);
    showSuggestions(q);
  });

  input.addEventListener('focus', function () {
    if (input.value === '') showSuggestions('');
  });

  input.addEventListener('blur', function () {
    setTimeout(function () { suggestions.hidden = true; }, 150);
  });

  input.addEventListener('keydown', function (e) {
    if (e.key !== 'Enter') return;
    var q = input.value.trim();
    if (q.length < 2) return;
    fetch('/api/history', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ query: q })
    });
    runSearch(q);
    suggestions.hidden = true;
  });

  document.querySelectorAll('.checklist-toggle').forEach(function (btn) {
    btn.addEventListener('click', function () {
      var entry = btn.closest('.checklist-entry');
      var wasOpen = entry.classList.contains('open');
      document.querySelectorAll('.checklist-entry.open').forEach(function (el) {
        el.classList.remove('open');
      });
      if (!wasOpen) entry.classList.add('open');
    });
  });

  var themeToggle = document.getElementById('theme-toggle');
  themeToggle.addEventListener('click', function () {
    var root = document.documentElement;
    var next = root.getAttribute('data-theme') === 'dark' ? 'light' : 'dark';
    root.setAttribute('data-theme', next);
    fetch('/api/theme', {
      method: 'PUT',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ theme: next })
    });
  });

  var offline = document.getElementById('offline-indicator');
  function updateOnline() { offline.hidden = navigator.onLine; }
  window.addEventListener('online', updateOnline);
  window.addEventListener('offline', updateOnline);
  updateOnline();

  var backToTop = document.getElementById('back-to-top');
  backToTop.addEventListener('click', function () {
    window.scrollTo({ top: 0, behavior: 'smooth' });
  });
})();
`
