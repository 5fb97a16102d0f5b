package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pages are deliberately bare: the interesting part is the gate in
// front of them, not the markup. Each handler serves a static document
// whose forms talk to the JSON API.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) serve(c *gin.Context, body string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
}

func (h *PageHandler) Home(c *gin.Context) {
	h.serve(c, `<!doctype html>
<title>AlignTODO</title>
<h1>AlignTODO</h1>
<p><a href="/login">Log in</a> or <a href="/register">create an account</a>.</p>
`)
}

func (h *PageHandler) Login(c *gin.Context) {
	h.serve(c, `<!doctype html>
<title>Log in — AlignTODO</title>
<h1>Log in</h1>
<form method="post" action="/auth/login" onsubmit="return submitAuth(event, '/auth/login')">
  <input name="email" type="email" placeholder="email" required>
  <input name="password" type="password" placeholder="password" required>
  <button>Log in</button>
</form>
<p><a href="/register">Need an account?</a></p>
<script>
async function submitAuth(e, url) {
  e.preventDefault();
  const f = new FormData(e.target);
  const res = await fetch(url, {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({email: f.get('email'), password: f.get('password')}),
  });
  if (res.ok) { window.location = '/dashboard'; } else { alert((await res.json()).error); }
  return false;
}
</script>
`)
}

func (h *PageHandler) Register(c *gin.Context) {
	h.serve(c, `<!doctype html>
<title>Register — AlignTODO</title>
<h1>Create account</h1>
<form method="post" action="/auth/register" onsubmit="return submitAuth(event, '/auth/register')">
  <input name="email" type="email" placeholder="email" required>
  <input name="password" type="password" placeholder="password (6+ chars)" minlength="6" required>
  <button>Register</button>
</form>
<p><a href="/login">Already registered?</a></p>
<script>
async function submitAuth(e, url) {
  e.preventDefault();
  const f = new FormData(e.target);
  const res = await fetch(url, {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({email: f.get('email'), password: f.get('password')}),
  });
  if (res.ok) { window.location = '/dashboard'; } else { alert((await res.json()).error); }
  return false;
}
</script>
`)
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	h.serve(c, `<!doctype html>
<title>Dashboard — AlignTODO</title>
<h1>Your tasks</h1>
<form onsubmit="return addTask(event)">
  <input name="title" placeholder="New task" required>
  <button>Add</button>
</form>
<select id="filter" onchange="load()">
  <option value="all">all</option>
  <option value="pending">pending</option>
  <option value="completed">completed</option>
</select>
<ul id="tasks"></ul>
<form method="post" action="/auth/logout" onsubmit="return logout(event)"><button>Log out</button></form>
<script>
async function load() {
  const status = document.getElementById('filter').value;
  const res = await fetch('/tasks?status=' + status);
  if (res.status === 401) { window.location = '/login'; return; }
  const data = await res.json();
  const ul = document.getElementById('tasks');
  ul.innerHTML = '';
  for (const t of data.tasks) {
    const li = document.createElement('li');
    const done = t.status === 'completed';
    li.innerHTML = '<label><input type="checkbox" ' + (done ? 'checked' : '') + '> ' +
      (done ? '<s>' + t.title + '</s>' : t.title) + '</label> <button>x</button>';
    li.querySelector('input').onchange = async () => {
      await fetch('/tasks/' + t.id, {
        method: 'PATCH',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({status: done ? 'pending' : 'completed'}),
      });
      load();
    };
    li.querySelector('button').onclick = async () => {
      await fetch('/tasks/' + t.id, {method: 'DELETE'});
      load();
    };
    ul.appendChild(li);
  }
}
async function addTask(e) {
  e.preventDefault();
  const f = new FormData(e.target);
  await fetch('/tasks', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({title: f.get('title')}),
  });
  e.target.reset();
  load();
  return false;
}
async function logout(e) {
  e.preventDefault();
  await fetch('/auth/logout', {method: 'POST'});
  window.location = '/login';
  return false;
}
load();
</script>
`)
}
