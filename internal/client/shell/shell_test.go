package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/atinyakov/paquetes/internal/client/transport"
	"github.com/atinyakov/paquetes/internal/client/view"
	"github.com/atinyakov/paquetes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryAPI is a tiny in-memory implementation of the paquetes API.
type memoryAPI struct {
	mu     sync.Mutex
	nextID int
	items  map[string]models.PackageInput
	order  []string
	calls  []string
}

func newMemoryAPI() *memoryAPI {
	return &memoryAPI{nextID: 1, items: map[string]models.PackageInput{}}
}

func (m *memoryAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, r.Method+" "+r.URL.Path)

	id := strings.TrimPrefix(r.URL.Path, "/api/paquetes/")
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && id == "":
		out := []map[string]string{}
		for _, k := range m.order {
			out = append(out, m.record(k))
		}
		_ = json.NewEncoder(w).Encode(out)
	case r.Method == http.MethodGet:
		if _, ok := m.items[id]; !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(m.record(id))
	case r.Method == http.MethodPost:
		var in models.PackageInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		k := string(rune('0' + m.nextID))
		m.nextID++
		m.items[k] = in
		m.order = append(m.order, k)
		_, _ = io.WriteString(w, `{"message":"Paquete creado"}`)
	case r.Method == http.MethodPut:
		var in models.PackageInput
		_ = json.NewDecoder(r.Body).Decode(&in)
		m.items[id] = in
		_, _ = io.WriteString(w, `{"message":"Paquete actualizado"}`)
	case r.Method == http.MethodDelete:
		delete(m.items, id)
		for i, k := range m.order {
			if k == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
		_, _ = io.WriteString(w, `{"message":"Paquete eliminado"}`)
	}
}

func (m *memoryAPI) record(id string) map[string]string {
	in := m.items[id]
	return map[string]string{"id_paquete": id, "ciudad": in.Ciudad, "dias": in.Dias, "precio": in.Precio, "banner": in.Banner}
}

func run(t *testing.T, api *memoryAPI, script string) (*Shell, string) {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	s := New(strings.NewReader(script), &out, transport.New(srv.Client(), nil), transport.NewEndpoints(srv.URL), nil)
	require.NoError(t, s.Run(context.Background()))
	return s, out.String()
}

func TestShell_AddEditDelete(t *testing.T) {
	api := newMemoryAPI()
	script := strings.Join([]string{
		"add", "Cusco", "2", "50", "x.png",
		"edit 1", "", "3", "", "",
		"delete 1", "n",
		"delete 1", "eliminar",
		"exit",
	}, "\n") + "\n"

	s, out := run(t, api, script)

	assert.Contains(t, out, "No paquetes.")
	assert.Contains(t, out, "✔ Exito! Paquete creado [Cerrar]")
	assert.Contains(t, out, "Ciudad [Cusco]: ")
	assert.Contains(t, out, "✔ Exito! Paquete actualizado [Cerrar]")
	assert.Contains(t, out, "✔ Paquete eliminado")
	assert.Contains(t, out, "Bye")

	assert.Equal(t, []string{
		"GET /api/paquetes/",
		"POST /api/paquetes/",
		"GET /api/paquetes/",
		"GET /api/paquetes/1",
		"PUT /api/paquetes/1",
		"GET /api/paquetes/",
		"DELETE /api/paquetes/1",
		"GET /api/paquetes/",
	}, api.calls)
	assert.Equal(t, view.Form{}, s.Form())
	assert.Empty(t, api.items)
}

func TestShell_ValidationFailureSendsNothing(t *testing.T) {
	api := newMemoryAPI()

	_, out := run(t, api, "add\nCusco\n\n50\nx.png\nexit\n")

	assert.Contains(t, out, "✘ Error! Por favor completa todos los campos. [Cerrar]")
	assert.Equal(t, []string{"GET /api/paquetes/"}, api.calls)
}

func TestShell_EditUnknownShowsAlert(t *testing.T) {
	api := newMemoryAPI()

	_, out := run(t, api, "edit 9\nexit\n")

	assert.Contains(t, out, "An error occurred while fetching data. Please try again.")
	assert.NotContains(t, out, "Ciudad")
}

func TestShell_HTMLAndUsage(t *testing.T) {
	api := newMemoryAPI()
	api.items["1"] = models.PackageInput{Ciudad: "Lima", Dias: "3", Precio: "100", Banner: "b.png"}
	api.order = []string{"1"}

	_, out := run(t, api, "html\nedit\nfoo\nhelp\n")

	assert.Contains(t, out, `<img src="b.png" width="30%">`)
	assert.Contains(t, out, "Usage: edit <id>")
	assert.Contains(t, out, "Unknown command")
	assert.Contains(t, out, help)
}

func TestShell_EOFDuringPrompt(t *testing.T) {
	api := newMemoryAPI()

	_, _ = run(t, api, "add\nCusco\n")

	assert.Equal(t, []string{"GET /api/paquetes/"}, api.calls)
}
