package ui

import "net/http"

// Stylesheet serves the console's single stylesheet.
func (h *Handler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(appCSS))
}

const appCSS = `
:root {
	--brand: #2E4A62;
	--brand-dark: #203345;
	--bg: #f9fafb;
	--border: #e5e7eb;
	--muted: #6b7280;
	--danger: #dc2626;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: Inter, system-ui, sans-serif; background: var(--bg); color: #111827; }
a { color: var(--brand); }
.muted { color: var(--muted); }
.truncate { overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }

.auth-body { display: flex; align-items: center; justify-content: center; min-height: 100vh; }
.auth-card { background: #fff; border: 1px solid var(--border); border-radius: 16px; padding: 2rem; width: 100%; max-width: 28rem; box-shadow: 0 10px 25px rgba(0,0,0,.06); }
.auth-card h1 { text-align: center; }
.auth-form { display: flex; flex-direction: column; gap: .5rem; }
.auth-form label { font-weight: 500; margin-top: .5rem; }
.auth-form input { padding: .75rem 1rem; border: 1px solid var(--border); border-radius: 10px; }
.auth-actions { display: flex; gap: 1rem; justify-content: center; }
.auth-switch { text-align: center; margin-top: 1.5rem; border-top: 1px solid var(--border); padding-top: 1rem; }
.hint { font-size: .75rem; color: var(--muted); margin: 0; }

.layout { display: flex; min-height: 100vh; }
.sidebar { width: 16rem; background: var(--brand); color: #fff; display: flex; flex-direction: column; }
.sidebar-logo { padding: 1rem; border-bottom: 1px solid rgba(255,255,255,.2); }
.sidebar-nav { flex: 1; padding: 1rem; }
.sidebar-nav ul { list-style: none; margin: 0; padding: 0; display: flex; flex-direction: column; gap: .5rem; }
.nav-link { display: flex; gap: .75rem; align-items: center; padding: .75rem; border-radius: 10px; color: #d1d5db; text-decoration: none; }
.nav-link:hover, .nav-link.active { background: var(--brand-dark); color: #fff; }
.sidebar-footer { padding: 1rem; border-top: 1px solid rgba(255,255,255,.2); font-size: .875rem; }
.content { flex: 1; padding: 1.5rem; overflow-x: auto; }
.topbar { margin-bottom: 1rem; }

.card { background: #fff; border: 1px solid var(--border); border-radius: 10px; padding: 1.25rem; margin-bottom: 1.25rem; }
.banner { border-radius: 10px; padding: .75rem 1rem; margin-bottom: 1rem; }
.banner-error { background: #fef2f2; border: 1px solid #fecaca; color: var(--danger); text-align: center; }
.page-actions { display: flex; justify-content: flex-end; margin-bottom: 1rem; }

.btn { display: inline-block; border: 0; border-radius: 10px; padding: .6rem 1rem; cursor: pointer; text-decoration: none; font-size: .9rem; }
.btn-primary { background: var(--brand); color: #fff; }
.btn-primary:hover { background: var(--brand-dark); }
.btn-secondary { background: #f3f4f6; color: #374151; }

.table-wrap { padding: 0; overflow-x: auto; }
table { width: 100%; border-collapse: collapse; }
th { text-align: left; font-size: .75rem; text-transform: uppercase; color: var(--muted); background: #f9fafb; padding: .75rem 1.25rem; }
td { padding: .9rem 1.25rem; border-top: 1px solid var(--border); vertical-align: middle; }
.cell-title { font-weight: 500; }
.cell-sub { font-size: .85rem; color: var(--muted); max-width: 28rem; overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }

.badge { display: inline-block; border-radius: 999px; padding: .15rem .6rem; font-size: .75rem; font-weight: 600; }
.badge-category { background: #dbeafe; color: #1e40af; }
.badge-green { background: #dcfce7; color: #166534; }
.badge-yellow { background: #fef9c3; color: #854d0e; }
.badge-red { background: #fee2e2; color: #991b1b; }
.badge-btn { border: 0; border-radius: 999px; padding: .15rem .6rem; font-size: .75rem; font-weight: 600; cursor: pointer; }
.badge-btn:disabled { opacity: .5; cursor: not-allowed; }

.action-link { background: none; border: 0; padding: 0; margin-right: .75rem; color: #4f46e5; cursor: pointer; font-size: .9rem; }
.action-link.danger { color: var(--danger); }
.action-link:disabled { opacity: .5; cursor: not-allowed; }
.inline-form { display: inline; }
.inline-form select:disabled { opacity: .5; }

.empty-state { text-align: center; padding: 3rem 1rem; }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(10rem, 1fr)); gap: 1rem; margin-top: 1rem; }
.stat-card { margin-bottom: 0; }
.stat-value { font-size: 1.5rem; font-weight: 700; }
.stat-row { display: flex; justify-content: space-between; border-bottom: 1px solid var(--border); padding: .5rem 0; }
.stat-label { font-weight: 500; color: #374151; }

.modal-overlay { position: fixed; inset: 0; background: rgba(0,0,0,.5); display: flex; align-items: center; justify-content: center; padding: 1rem; z-index: 50; }
.modal { background: #fff; border-radius: 10px; padding: 1.5rem; width: 100%; max-width: 42rem; max-height: 90vh; overflow-y: auto; display: flex; flex-direction: column; }
.modal form { display: flex; flex-direction: column; gap: .5rem; }
.modal label { font-size: .875rem; font-weight: 500; }
.modal input, .modal textarea, .modal select { padding: .7rem; border: 1px solid var(--border); border-radius: 10px; font: inherit; }
.modal-actions { display: flex; justify-content: flex-end; gap: .75rem; margin-top: 1rem; }

.chart-card canvas { max-height: 20rem; }
.account-card { background: #eff6ff; border-color: #bfdbfe; }
`
