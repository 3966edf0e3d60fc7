package client

import (
	"Inventario/models"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Mensaje genérico cuando el servidor no devuelve nada utilizable.
const fallbackErrorMessage = "Error de red o del servidor"

// Error devuelto por la API; expone el mensaje más específico disponible.
type APIError struct {
	Status  int          `json:"-"`
	Message string       `json:"error"`
	Errors  []FieldError `json:"errors"`
}

type FieldError struct {
	Type     string `json:"type"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 && e.Errors[0].Msg != "" {
		return e.Errors[0].Msg
	}
	if e.Message != "" {
		return e.Message
	}
	return fallbackErrorMessage
}

// Respuesta de /api/auth y /api/auth/register.
type AuthResponse struct {
	Ingresa bool           `json:"ingresa"`
	Usuario models.Usuario `json:"usuario"`
	Token   string         `json:"token"`
}

// Client consume la API REST. Si se le inyecta un SessionStore, los inicios
// de sesión y registros exitosos quedan persistidos en él.
type Client struct {
	baseURL string
	http    *http.Client
	session *SessionStore
}

func New(baseURL string, session *SessionStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		session: session,
	}
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.session != nil {
		if payload, ok := c.session.Current(); ok && payload.Token != "" {
			req.Header.Set("Authorization", "Bearer "+payload.Token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", fallbackErrorMessage, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: %w", fallbackErrorMessage, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

// Iniciar sesión; si responde ingresa=true la sesión queda persistida.
func (c *Client) Login(usuario, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(http.MethodPost, "/api/auth", map[string]string{
		"usuario":  usuario,
		"password": password,
	}, &out)
	if err != nil {
		return AuthResponse{}, err
	}
	if c.session != nil && out.Ingresa {
		if err := c.session.Login(SessionPayload{Usuario: out.Usuario, Token: out.Token}); err != nil {
			return AuthResponse{}, err
		}
	}
	return out, nil
}

// Registrar un usuario nuevo; también deja la sesión iniciada.
func (c *Client) Register(nombreUsuario, correo, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(http.MethodPost, "/api/auth/register", map[string]string{
		"nombre_usuario": nombreUsuario,
		"correo":         correo,
		"password":       password,
	}, &out)
	if err != nil {
		return AuthResponse{}, err
	}
	if c.session != nil && out.Ingresa {
		if err := c.session.Login(SessionPayload{Usuario: out.Usuario, Token: out.Token}); err != nil {
			return AuthResponse{}, err
		}
	}
	return out, nil
}

// Cerrar sesión y devolver la ruta de entrada.
func (c *Client) Logout() string {
	if c.session == nil {
		return EntryRoute
	}
	return c.session.Logout()
}

//Productos

func (c *Client) Productos() ([]models.Producto, error) {
	productos := make([]models.Producto, 0)
	if err := c.do(http.MethodGet, "/api/productos", nil, &productos); err != nil {
		return nil, err
	}
	return productos, nil
}

func (c *Client) Producto(id uint) (models.Producto, error) {
	var producto models.Producto
	err := c.do(http.MethodGet, fmt.Sprintf("/api/productos/%d", id), nil, &producto)
	return producto, err
}

func (c *Client) CreateProducto(producto models.Producto) (models.Producto, error) {
	var out struct {
		ID uint `json:"id"`
	}
	body := map[string]interface{}{
		"nombre_producto": producto.NombreProducto,
		"precio":          producto.Precio,
		"stock":           producto.Stock,
	}
	if err := c.do(http.MethodPost, "/api/productos", body, &out); err != nil {
		return models.Producto{}, err
	}
	producto.IDProducto = out.ID
	return producto, nil
}

func (c *Client) UpdateProducto(id uint, campos map[string]interface{}) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/api/productos/%d", id), campos, nil)
}

func (c *Client) DeleteProducto(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/productos/%d", id), nil, nil)
}

//Proveedores

func (c *Client) Proveedores() ([]models.Proveedor, error) {
	proveedores := make([]models.Proveedor, 0)
	if err := c.do(http.MethodGet, "/api/proveedores", nil, &proveedores); err != nil {
		return nil, err
	}
	return proveedores, nil
}

func (c *Client) Proveedor(id uint) (models.Proveedor, error) {
	var proveedor models.Proveedor
	err := c.do(http.MethodGet, fmt.Sprintf("/api/proveedores/%d", id), nil, &proveedor)
	return proveedor, err
}

func (c *Client) CreateProveedor(proveedor models.Proveedor) (models.Proveedor, error) {
	var out struct {
		ID uint `json:"id"`
	}
	body := map[string]interface{}{
		"nombre_proveedor": proveedor.NombreProveedor,
		"nombre_contacto":  proveedor.NombreContacto,
		"celular":          proveedor.Celular,
		"direccion":        proveedor.Direccion,
	}
	if err := c.do(http.MethodPost, "/api/proveedores", body, &out); err != nil {
		return models.Proveedor{}, err
	}
	proveedor.IDProveedor = out.ID
	return proveedor, nil
}

func (c *Client) UpdateProveedor(id uint, campos map[string]interface{}) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/api/proveedores/%d", id), campos, nil)
}

func (c *Client) DeleteProveedor(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/proveedores/%d", id), nil, nil)
}

//Vendedores

func (c *Client) Vendedores() ([]models.Vendedor, error) {
	vendedores := make([]models.Vendedor, 0)
	if err := c.do(http.MethodGet, "/api/vendedores", nil, &vendedores); err != nil {
		return nil, err
	}
	return vendedores, nil
}

func (c *Client) Vendedor(id uint) (models.Vendedor, error) {
	var vendedor models.Vendedor
	err := c.do(http.MethodGet, fmt.Sprintf("/api/vendedores/%d", id), nil, &vendedor)
	return vendedor, err
}

func (c *Client) CreateVendedor(vendedor models.Vendedor) (models.Vendedor, error) {
	var out struct {
		ID uint `json:"id"`
	}
	body := map[string]interface{}{
		"nombre_vendedor": vendedor.NombreVendedor,
		"dni":             vendedor.Dni,
		"celular":         vendedor.Celular,
		"direccion":       vendedor.Direccion,
	}
	if err := c.do(http.MethodPost, "/api/vendedores", body, &out); err != nil {
		return models.Vendedor{}, err
	}
	vendedor.IDVendedor = out.ID
	return vendedor, nil
}

func (c *Client) UpdateVendedor(id uint, campos map[string]interface{}) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/api/vendedores/%d", id), campos, nil)
}

func (c *Client) DeleteVendedor(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/vendedores/%d", id), nil, nil)
}

//Usuarios

func (c *Client) Usuarios() ([]models.Usuario, error) {
	usuarios := make([]models.Usuario, 0)
	if err := c.do(http.MethodGet, "/api/usuarios", nil, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (c *Client) Usuario(id uint) (models.Usuario, error) {
	var usuario models.Usuario
	err := c.do(http.MethodGet, fmt.Sprintf("/api/usuarios/%d", id), nil, &usuario)
	return usuario, err
}

func (c *Client) CreateUsuario(nombreUsuario, correo, password string) (models.Usuario, error) {
	var out struct {
		ID            uint   `json:"id"`
		NombreUsuario string `json:"nombre_usuario"`
		Correo        string `json:"correo"`
	}
	body := map[string]string{
		"nombre_usuario": nombreUsuario,
		"correo":         correo,
		"password":       password,
	}
	if err := c.do(http.MethodPost, "/api/usuarios", body, &out); err != nil {
		return models.Usuario{}, err
	}
	return models.Usuario{
		IDUsuario:     out.ID,
		NombreUsuario: out.NombreUsuario,
		Correo:        out.Correo,
	}, nil
}

func (c *Client) UpdateUsuario(id uint, campos map[string]interface{}) error {
	return c.do(http.MethodPatch, fmt.Sprintf("/api/usuarios/%d", id), campos, nil)
}

func (c *Client) DeleteUsuario(id uint) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/api/usuarios/%d", id), nil, nil)
}
