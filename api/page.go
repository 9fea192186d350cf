package api

import "net/http"

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(pageHTML))
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>QR Lab &mdash; Generate, Style &amp; Download</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
    background: #f4f4f5; color: #18181b;
    display: flex; justify-content: center; padding: 32px 16px;
  }
  .card {
    background: #fff; border: 1px solid #e4e4e7; border-radius: 16px;
    padding: 32px; max-width: 760px; width: 100%;
  }
  h1 { font-size: 22px; margin-bottom: 4px; }
  .subtitle { color: #71717a; font-size: 14px; margin-bottom: 24px; }
  label { display: block; font-size: 13px; color: #3f3f46; margin: 10px 0 4px; }
  input, select, textarea {
    width: 100%; padding: 8px 10px; border: 1px solid #d4d4d8;
    border-radius: 8px; font-size: 14px;
  }
  input[type=checkbox] { width: auto; }
  .row { display: flex; gap: 12px; }
  .row > div { flex: 1; }
  fieldset { border: 1px solid #e4e4e7; border-radius: 12px; padding: 12px 16px 16px; margin-top: 20px; }
  legend { font-size: 13px; color: #71717a; padding: 0 6px; }
  button {
    margin-top: 20px; padding: 10px 18px; border: 0; border-radius: 10px;
    background: #18181b; color: #fff; font-size: 15px; cursor: pointer;
  }
  #preview { margin-top: 24px; text-align: center; }
  #preview img { width: 280px; height: 280px; border: 1px solid #e4e4e7; border-radius: 12px; }
  #warning { color: #b45309; font-size: 13px; margin-top: 8px; }
  #error { color: #b91c1c; font-size: 13px; margin-top: 8px; }
  #downloads a { margin: 0 8px; font-size: 14px; }
  .hidden { display: none; }
</style>
</head>
<body>
<div class="card">
  <h1>QR Lab</h1>
  <p class="subtitle">Enter content, pick options, and download PNG / SVG / PDF. Static codes only.</p>
  <form id="form">
    <label>Content type</label>
    <select name="type" id="type">
      <option value="text">URL / Text</option>
      <option value="wifi">Wi-Fi</option>
      <option value="email">Email</option>
      <option value="sms">SMS</option>
      <option value="phone">Phone</option>
      <option value="geo">Geo</option>
      <option value="vcard">vCard</option>
      <option value="event">Calendar event</option>
    </select>

    <div data-type="text">
      <label>Text or URL</label><textarea name="text" rows="3" placeholder="https://example.com or any text"></textarea>
    </div>
    <div data-type="wifi" class="hidden">
      <label>SSID</label><input name="ssid">
      <label>Authentication</label>
      <select name="auth"><option value="WPA">WPA/WPA2</option><option value="WEP">WEP</option><option value="nopass">No password</option></select>
      <label>Password</label><input name="password" type="password">
      <label><input type="checkbox" name="hidden" value="true"> Hidden network</label>
    </div>
    <div data-type="email" class="hidden">
      <label>To</label><input name="to">
      <label>Subject</label><input name="subject">
      <label>Body</label><textarea name="body" rows="3"></textarea>
    </div>
    <div data-type="sms" class="hidden">
      <label>Phone number</label><input name="number">
      <label>Message</label><textarea name="message" rows="3"></textarea>
    </div>
    <div data-type="phone" class="hidden">
      <label>Phone number</label><input name="number">
    </div>
    <div data-type="geo" class="hidden">
      <div class="row">
        <div><label>Latitude</label><input name="lat" value="40.7128"></div>
        <div><label>Longitude</label><input name="lon" value="-74.0060"></div>
      </div>
      <label>Label (optional)</label><input name="label" placeholder="Statue of Liberty">
    </div>
    <div data-type="vcard" class="hidden">
      <div class="row">
        <div><label>First name</label><input name="given"></div>
        <div><label>Last name</label><input name="family"></div>
      </div>
      <div class="row">
        <div><label>Phone</label><input name="phone"></div>
        <div><label>Email</label><input name="email"></div>
      </div>
      <div class="row">
        <div><label>Organization</label><input name="org"></div>
        <div><label>Title</label><input name="title"></div>
      </div>
      <label>Website</label><input name="url">
    </div>
    <div data-type="event" class="hidden">
      <label>Title</label><input name="summary">
      <div class="row">
        <div><label>Start</label><input name="start" type="datetime-local"></div>
        <div><label>End</label><input name="end" type="datetime-local"></div>
      </div>
      <label>Location</label><input name="location">
      <label>Description</label><textarea name="description" rows="3"></textarea>
    </div>

    <fieldset>
      <legend>Style</legend>
      <div class="row">
        <div><label>Error correction</label>
          <select name="level"><option>L</option><option>M</option><option>Q</option><option selected>H</option></select></div>
        <div><label>Module scale</label><input name="scale" type="number" min="1" max="40" value="10"></div>
        <div><label>Quiet zone</label><input name="border" type="number" min="0" max="16" value="4"></div>
      </div>
      <div class="row">
        <div><label>Foreground</label><input name="fg" type="color" value="#111827"></div>
        <div><label>Background</label><input name="bg" type="color" value="#FFFFFF"></div>
      </div>
    </fieldset>

    <fieldset>
      <legend>Logo overlay</legend>
      <label>Logo (PNG/JPG)</label><input name="logo" type="file" accept="image/png,image/jpeg">
      <div class="row">
        <div><label>Size (fraction of QR width)</label><input name="logo_scale" type="number" step="0.01" min="0.1" max="0.4" value="0.22"></div>
        <div><label style="margin-top:26px"><input type="checkbox" name="logo_round" value="true" checked> Round mask</label></div>
      </div>
    </fieldset>

    <button type="submit">Generate QR code</button>
    <div id="error"></div>
  </form>

  <div id="preview" class="hidden">
    <img id="preview-img" alt="QR code preview">
    <div id="warning"></div>
    <p id="downloads">
      <a href="/api/qr.png" download>PNG</a>
      <a href="/api/qr.svg" download>SVG</a>
      <a href="/api/qr.pdf" download>PDF</a>
    </p>
  </div>
</div>
<script>
(function() {
  var form = document.getElementById('form');
  var typeSel = document.getElementById('type');

  function showFields() {
    var sections = document.querySelectorAll('[data-type]');
    for (var i = 0; i < sections.length; i++) {
      sections[i].classList.toggle('hidden', sections[i].getAttribute('data-type') !== typeSel.value);
    }
  }
  typeSel.addEventListener('change', showFields);
  showFields();

  form.addEventListener('submit', function(ev) {
    ev.preventDefault();
    document.getElementById('error').textContent = '';
    fetch('/api/generate', { method: 'POST', body: new FormData(form) })
      .then(function(r) { return r.json().then(function(d) { return { ok: r.ok, data: d }; }); })
      .then(function(res) {
        if (!res.ok) {
          document.getElementById('error').textContent = res.data.error || 'generation failed';
          return;
        }
        document.getElementById('preview').classList.remove('hidden');
        document.getElementById('preview-img').src = 'data:image/png;base64,' + res.data.preview_png;
        document.getElementById('warning').textContent = res.data.warning || '';
      })
      .catch(function() {
        document.getElementById('error').textContent = 'request failed';
      });
  });
})();
</script>
</body>
</html>`
