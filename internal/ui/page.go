package ui

// indexPage is the single page shell. The results region and the conflict
// panel are fetched as fragments, the map overlay as JSON.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Routeview</title>
    <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
    <style>
        body { font-family: system-ui, sans-serif; margin: 0; background: #f3f4f6; }
        header { background: #1f2937; color: #fff; padding: 0.75rem 1.5rem; }
        main { max-width: 1100px; margin: 1rem auto; padding: 0 1rem; }
        #search-form { display: flex; gap: 0.5rem; flex-wrap: wrap; margin-bottom: 1rem; }
        #search-form input { padding: 0.4rem 0.6rem; border: 1px solid #d1d5db; border-radius: 4px; }
        #search-form button { padding: 0.4rem 1rem; background: #2563eb; color: #fff; border: 0; border-radius: 4px; cursor: pointer; }
        #map { height: 380px; border-radius: 8px; margin-bottom: 1rem; background: #e5e7eb; }
        .tab-strip { display: flex; gap: 0.25rem; margin-bottom: 0.5rem; }
        .tab { padding: 0.4rem 1rem; border: 1px solid #d1d5db; background: #fff; border-radius: 4px 4px 0 0; cursor: pointer; }
        .tab-active { background: #2563eb; color: #fff; border-color: #2563eb; }
        .result-pane { background: #fff; border: 1px solid #d1d5db; border-radius: 0 4px 4px 4px; padding: 1rem; }
        .aggregate { font-weight: 600; margin-bottom: 0.75rem; }
        .leg { border-top: 1px solid #e5e7eb; padding: 0.5rem 0; }
        .leg-invalid { background: #fef2f2; }
        .invalid-marker { color: #b91c1c; font-weight: 600; }
        .notice { padding: 0.75rem; border-radius: 4px; background: #f9fafb; }
        .notice-data-error { background: #fef2f2; color: #991b1b; }
        .warning-banner { background: #fffbeb; border: 1px solid #f59e0b; border-radius: 4px; padding: 0.75rem; margin-bottom: 0.75rem; }
        .conflict-panel { background: #fff; border: 1px solid #d1d5db; border-radius: 4px; padding: 1rem; margin-top: 1rem; }
    </style>
</head>
<body>
<header><strong>Routeview</strong> &mdash; flight route search</header>
<main>
    <form id="search-form">
        <input name="start" placeholder="From (e.g. OSL)" required>
        <input name="destination" placeholder="To (e.g. HAU)" required>
        <input name="preferred_airline" placeholder="Preferred airline">
        <input name="avoid_airline" placeholder="Avoid airline">
        <button type="submit">Search</button>
    </form>

    <div id="map"></div>
    <div id="results"></div>
    <div id="conflict-panel"></div>
</main>

<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script>
var map = L.map('map').setView([60.5, 8.5], 5);
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
    attribution: '&copy; OpenStreetMap contributors'
}).addTo(map);
var overlayLayer = L.layerGroup().addTo(map);

function drawOverlay(overlay) {
    overlayLayer.clearLayers();
    if (!overlay) { return; }
    overlay.markers.forEach(function (m) {
        L.marker([m.lat, m.lng]).bindTooltip(m.label).addTo(overlayLayer);
    });
    if (overlay.path.length > 1) {
        L.polyline(overlay.path.map(function (p) { return [p.lat, p.lng]; }),
            { color: '#2563eb' }).addTo(overlayLayer);
    }
    if (overlay.bounds) {
        map.fitBounds([[overlay.bounds.south, overlay.bounds.west],
                       [overlay.bounds.north, overlay.bounds.east]],
                      { padding: [30, 30] });
    }
}

function refreshMap() {
    fetch('/api/map').then(function (r) { return r.json(); }).then(function (body) {
        drawOverlay(body.data);
    });
}

function refreshResults() {
    fetch('/partials/results').then(function (r) { return r.text(); }).then(function (html) {
        document.getElementById('results').innerHTML = html;
    });
}

document.getElementById('search-form').addEventListener('submit', function (ev) {
    ev.preventDefault();
    var form = new FormData(ev.target);
    var body = {
        start: form.get('start'),
        end: form.get('destination'),
        preferences: {
            preferred_airline: form.get('preferred_airline') || null,
            avoid_airline: form.get('avoid_airline') || null
        }
    };
    fetch('/api/search', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify(body)
    }).then(function () {
        refreshResults();
        refreshMap();
        pollWarning(0);
    });
});

document.addEventListener('click', function (ev) {
    var tab = ev.target.closest('.tab');
    if (tab) {
        fetch('/api/tabs/' + tab.getAttribute('data-criterion'), { method: 'POST' })
            .then(function () { refreshResults(); refreshMap(); });
        return;
    }
    if (ev.target.id === 'view-conflicts') {
        fetch('/api/panel/open', { method: 'POST' }).then(function () {
            fetch('/partials/conflicts').then(function (r) { return r.text(); }).then(function (html) {
                document.getElementById('conflict-panel').innerHTML = html;
            });
        });
        return;
    }
    if (ev.target.id === 'close-conflicts') {
        fetch('/api/panel/close', { method: 'POST' }).then(function () {
            document.getElementById('conflict-panel').innerHTML = '';
        });
    }
});

// The conflict check runs in the background on the server. Poll the results
// fragment a few times so the warning banner shows up when it lands.
function pollWarning(attempt) {
    if (attempt >= 5) { return; }
    setTimeout(function () {
        refreshResults();
        pollWarning(attempt + 1);
    }, 2000);
}
</script>
</body>
</html>
`
