package client

import (
	"Inventario/models"
	"encoding/json"
	"os"
	"sync"
)

// Ruta a la que se redirige cuando no hay sesión.
const EntryRoute = "/"

// Resultado de la comprobación de acceso de una vista protegida.
type GateResult int

const (
	// La carga inicial todavía no terminó; mostrar estado transitorio.
	GateLoading GateResult = iota
	// Hay sesión; la vista protegida puede renderizarse.
	GateAllow
	// No hay sesión; redirigir a EntryRoute.
	GateRedirect
)

// Lo que se persiste bajo la única clave de almacenamiento: el usuario
// autenticado y su token.
type SessionPayload struct {
	Usuario models.Usuario `json:"usuario"`
	Token   string         `json:"token"`
}

// SessionStore guarda a lo sumo una sesión, respaldada por un archivo JSON
// para que sobreviva a un reinicio. Se inyecta donde haga falta; no hay
// estado global de paquete.
type SessionStore struct {
	path string

	mu      sync.Mutex
	loading bool
	current *SessionPayload
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path, loading: true}
}

// Load lee el almacenamiento de forma síncrona al arrancar. Si hay una
// sesión guardada se adopta tal cual, sin validarla contra el servidor y
// sin caducidad; la fase de carga termina en cuanto Load retorna.
func (s *SessionStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.loading = false }()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var payload SessionPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		// Almacenamiento corrupto: se descarta y se queda sin sesión.
		return err
	}
	s.current = &payload
	return nil
}

// Login persiste la sesión y la adopta como actual.
func (s *SessionStore) Login(payload SessionPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return err
	}

	s.current = &payload
	s.loading = false
	return nil
}

// Logout borra el almacenamiento y la sesión actual, y devuelve la ruta de
// entrada a la que debe navegar quien llama.
func (s *SessionStore) Logout() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Aunque el borrado del archivo falle, el estado en memoria se limpia.
	_ = os.Remove(s.path)
	s.current = nil
	return EntryRoute
}

func (s *SessionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Current devuelve una copia de la sesión actual, si existe.
func (s *SessionStore) Current() (SessionPayload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return SessionPayload{}, false
	}
	return *s.current, true
}

// IsAuthenticated = carga terminada y sesión presente.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.loading && s.current != nil
}

// Gate decide el acceso a una vista protegida.
func (s *SessionStore) Gate() GateResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return GateLoading
	}
	if s.current == nil {
		return GateRedirect
	}
	return GateAllow
}
