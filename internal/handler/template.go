package handler

// dashboardHTML is the single dashboard page. Map pane on the left, tabbed
// pane (about + data table) on the right. Widget assets come from CDNs; the
// page itself never calls back into the server after the initial render.
const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Synthetic IP map</title>
    <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css" />
    <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
    <link rel="stylesheet" href="https://unpkg.com/leaflet-measure@3.1.0/dist/leaflet-measure.css" />
    <script src="https://unpkg.com/leaflet-measure@3.1.0/dist/leaflet-measure.js"></script>
    <script src="https://code.jquery.com/jquery-3.7.1.min.js"></script>
    <link rel="stylesheet" href="https://cdn.datatables.net/1.13.8/css/jquery.dataTables.min.css" />
    <script src="https://cdn.datatables.net/1.13.8/js/jquery.dataTables.min.js"></script>
    <style>
        html, body { height: 100%; margin: 0; font-family: system-ui, sans-serif; }
        #layout { display: flex; height: 100%; }
        #map { flex: 3; height: 100%; }
        #side { flex: 2; display: flex; flex-direction: column; overflow: auto; border-left: 1px solid #ccc; }
        #tabs { display: flex; border-bottom: 1px solid #ccc; }
        #tabs button { flex: 1; padding: 10px; border: none; background: #f4f4f4; cursor: pointer; }
        #tabs button.active { background: #fff; font-weight: bold; }
        .tab-panel { display: none; padding: 12px; }
        .tab-panel.active { display: block; }
        .pin { background: none; border: none; }
        .pin-dot { display: inline-flex; width: 22px; height: 22px; border-radius: 50% 50% 50% 0;
                   transform: rotate(-45deg); align-items: center; justify-content: center;
                   color: #fff; font-size: 11px; border: 1px solid rgba(0,0,0,.4); }
        .pin-dot > span { transform: rotate(45deg); }
        .legend-swatch { display: inline-block; width: 12px; height: 12px; border-radius: 50%; margin-right: 6px; }
        #records-table { width: 100%; }
        #records-table thead input { width: 95%; box-sizing: border-box; }
    </style>
</head>
<body>
<div id="layout">
    <div id="map"></div>
    <div id="side">
        <div id="tabs">
            <button id="tab-about" class="active">About</button>
            <button id="tab-data">Explore the data</button>
        </div>
        <div id="panel-about" class="tab-panel active">
            <h2>Synthetic IP map</h2>
            <p>{{.Total}} synthetic IP observations with pre-computed
               geolocations, split at random into three display groups.
               Toggle group layers with the control in the top-right corner
               of the map; the ruler control measures distances and areas.
               {{if .Dropped}}{{.Dropped}} row(s) were dropped for
               malformed coordinates.{{end}}</p>
            <h3>Legend</h3>
            <ul id="legend"></ul>
        </div>
        <div id="panel-data" class="tab-panel">
            <table id="records-table" class="display"></table>
        </div>
    </div>
</div>
<script>
    const mapSpec = {{.MapJSON}};
    const tableSpec = {{.TableJSON}};

    const GLYPHS = { circle: '●', star: '★', flag: '⚑' };

    function makeIcon(color, glyph) {
        return L.divIcon({
            className: 'pin',
            html: '<span class="pin-dot" style="background:' + color + '"><span>' +
                  (GLYPHS[glyph] || GLYPHS.circle) + '</span></span>',
            iconSize: [22, 22],
            iconAnchor: [11, 22],
            popupAnchor: [0, -20]
        });
    }

    const map = L.map('map').setView([mapSpec.center_lat, mapSpec.center_lon], mapSpec.zoom);
    L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
        attribution: '&copy; OpenStreetMap contributors'
    }).addTo(map);

    const overlays = {};
    const legend = document.getElementById('legend');
    (mapSpec.layers || []).forEach(function (layer) {
        const group = L.layerGroup();
        (layer.markers || []).forEach(function (m) {
            L.marker([m.lat, m.lon], { icon: makeIcon(layer.color, m.icon) })
                .bindPopup(m.popup_html)
                .addTo(group);
        });
        overlays[layer.name] = group;
        if (layer.visible) {
            group.addTo(map);
        }
        const li = document.createElement('li');
        li.innerHTML = '<span class="legend-swatch" style="background:' + layer.color + '"></span>' +
            layer.name + ' (' + (layer.markers || []).length + ')';
        legend.appendChild(li);
    });
    L.control.layers(null, overlays, { collapsed: false }).addTo(map);
    new L.Control.Measure({
        primaryLengthUnit: 'kilometers',
        primaryAreaUnit: 'sqmeters',
        position: 'topleft'
    }).addTo(map);

    const table = document.getElementById('records-table');
    const head = document.createElement('thead');
    const headerRow = document.createElement('tr');
    const filterRow = document.createElement('tr');
    tableSpec.columns.forEach(function (col) {
        const th = document.createElement('th');
        th.textContent = col.header;
        headerRow.appendChild(th);
        const fth = document.createElement('th');
        const input = document.createElement('input');
        input.type = 'text';
        input.placeholder = 'Filter ' + col.header;
        fth.appendChild(input);
        filterRow.appendChild(fth);
    });
    head.appendChild(headerRow);
    head.appendChild(filterRow);
    table.appendChild(head);

    const dt = $('#records-table').DataTable({
        data: tableSpec.rows,
        pageLength: tableSpec.page_size,
        order: [],
        orderCellsTop: true
    });
    $('#records-table thead tr:eq(1) th input').each(function (i) {
        $(this).on('keyup change', function () {
            if (dt.column(i).search() !== this.value) {
                dt.column(i).search(this.value).draw();
            }
        });
    });

    function activate(tab) {
        document.querySelectorAll('#tabs button').forEach(function (b) { b.classList.remove('active'); });
        document.querySelectorAll('.tab-panel').forEach(function (p) { p.classList.remove('active'); });
        document.getElementById('tab-' + tab).classList.add('active');
        document.getElementById('panel-' + tab).classList.add('active');
        if (tab === 'data') {
            dt.columns.adjust();
        }
    }
    document.getElementById('tab-about').addEventListener('click', function () { activate('about'); });
    document.getElementById('tab-data').addEventListener('click', function () { activate('data'); });
</script>
</body>
</html>
`
