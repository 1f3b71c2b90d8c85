package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dmaops/operaciones_mid/helpers"
	"github.com/dmaops/operaciones_mid/models"
	rootservices "github.com/dmaops/operaciones_mid/services"
)

// OperacionesCRUDClient agrupa las operaciones contra el CRUD de operaciones que
// necesita el MID: personal, documentos, jerarquía de carteras, prerrequisitos y
// programación semanal.
type OperacionesCRUDClient struct {
	cfg rootservices.Config
}

var (
	crudClient     *OperacionesCRUDClient
	crudClientOnce sync.Once
)

// OperacionesCRUD retorna un cliente singleton listo para llamar al servicio CRUD.
func OperacionesCRUD() *OperacionesCRUDClient {
	crudClientOnce.Do(func() {
		crudClient = NewOperacionesCRUD(rootservices.GetConfig())
	})
	return crudClient
}

// NewOperacionesCRUD construye un cliente con configuración explícita. Útil en
// pruebas con backends falsos.
func NewOperacionesCRUD(cfg rootservices.Config) *OperacionesCRUDClient {
	return &OperacionesCRUDClient{cfg: cfg}
}

func (c *OperacionesCRUDClient) headers() map[string]string {
	h := map[string]string{}
	if t := strings.TrimSpace(c.cfg.CRUDBearerToken); t != "" {
		h["Authorization"] = "Bearer " + t
	}
	return h
}

func (c *OperacionesCRUDClient) do(ctx context.Context, method, endpoint string, in, out any) error {
	return helpers.DoJSONWithHeaders(ctx, method, endpoint, c.headers(), in, out, c.cfg.RequestTimeout)
}

// Salud verifica que el backend responda. Cualquier error (red o status) se
// reporta como backend no disponible; la decisión de modo demo es del llamador.
func (c *OperacionesCRUDClient) Salud(ctx context.Context) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	if c.cfg.OperacionesCRUDBaseURL == "" {
		return fmt.Errorf("backend no configurado")
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "health")
	return c.do(ctx, "GET", endpoint, nil, nil)
}

// ---------------------------------------------------------------- personal

// ListPersonalDisponible lista el personal disponible aplicando búsqueda y paginación.
// Los registros llegan con campos de nombre heterogéneos; aquí se resuelven a un
// nombre único (ver models.ResolverNombre).
func (c *OperacionesCRUDClient) ListPersonalDisponible(ctx context.Context, q string, filtros map[string]string, offset, limit int) ([]models.Persona, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "personal-disponible")
	values := url.Values{}
	if trimmed := strings.TrimSpace(q); trimmed != "" {
		values.Set("q", trimmed)
	}
	if len(filtros) > 0 {
		if encoded, err := json.Marshal(filtros); err == nil {
			values.Set("filtros", string(encoded))
		}
	}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		values.Set("offset", strconv.Itoa(offset))
	}

	urlWithQuery := endpoint
	if encoded := values.Encode(); encoded != "" {
		urlWithQuery = endpoint + "?" + encoded
	}

	var raw []map[string]interface{}
	if err := c.do(ctx, "GET", urlWithQuery, nil, &raw); err != nil {
		return nil, err
	}

	result := make([]models.Persona, 0, len(raw))
	for _, entry := range raw {
		result = append(result, mapPersona(entry))
	}
	return result, nil
}

func mapPersona(raw map[string]interface{}) models.Persona {
	p := models.Persona{}
	p.Rut = strings.TrimSpace(normalizeToString(firstOf(raw, "rut", "Rut", "RUT")))
	p.Nombre = models.ResolverNombre(raw, p.Rut)
	p.Cargo = strings.TrimSpace(normalizeToString(firstOf(raw, "cargo", "Cargo", "rol")))
	p.ZonaGeografica = strings.TrimSpace(normalizeToString(firstOf(raw, "zona_geografica", "zona", "ZonaGeografica")))
	p.Activo = normalizeToBool(firstOf(raw, "activo", "Activo"), true)
	return p
}

func firstOf(raw map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// ---------------------------------------------------------------- documentos

type documentoRecord struct {
	Id               models.FlexInt `json:"id"`
	RutPersona       string         `json:"rut_persona"`
	TipoDocumento    string         `json:"tipo_documento"`
	NombreDocumento  string         `json:"nombre_documento"`
	FechaEmision     string         `json:"fecha_emision"`
	FechaVencimiento string         `json:"fecha_vencimiento"`
}

// GetDocumentosPersona retorna los documentos de una persona, sin clasificar.
func (c *OperacionesCRUDClient) GetDocumentosPersona(ctx context.Context, rut string) ([]models.Documento, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "documentos", "persona", url.PathEscape(strings.TrimSpace(rut)))

	var raw []documentoRecord
	if err := c.do(ctx, "GET", endpoint, nil, &raw); err != nil {
		return nil, err
	}
	return mapDocumentos(raw), nil
}

// ListDocumentosVencidos consulta el corte de documentos ya vencidos según el backend.
func (c *OperacionesCRUDClient) ListDocumentosVencidos(ctx context.Context) ([]models.Documento, error) {
	return c.listDocumentos(ctx, "vencidos")
}

// ListDocumentosPorVencer consulta el corte de documentos próximos a vencer según el backend.
func (c *OperacionesCRUDClient) ListDocumentosPorVencer(ctx context.Context) ([]models.Documento, error) {
	return c.listDocumentos(ctx, "por-vencer")
}

func (c *OperacionesCRUDClient) listDocumentos(ctx context.Context, corte string) ([]models.Documento, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "documentos", corte)

	var raw []documentoRecord
	if err := c.do(ctx, "GET", endpoint, nil, &raw); err != nil {
		return nil, err
	}
	return mapDocumentos(raw), nil
}

func mapDocumentos(raw []documentoRecord) []models.Documento {
	result := make([]models.Documento, 0, len(raw))
	for _, item := range raw {
		doc := models.Documento{
			Id:              item.Id.Int64(),
			RutPersona:      strings.TrimSpace(item.RutPersona),
			TipoDocumento:   strings.TrimSpace(item.TipoDocumento),
			NombreDocumento: strings.TrimSpace(item.NombreDocumento),
		}
		if t := parseTimeValue(item.FechaEmision); !t.IsZero() {
			doc.FechaEmision = &t
		}
		if t := parseTimeValue(item.FechaVencimiento); !t.IsZero() {
			doc.FechaVencimiento = &t
		}
		result = append(result, doc)
	}
	return result
}

// ---------------------------------------------------------------- carteras

// ListCarteras retorna todas las carteras.
func (c *OperacionesCRUDClient) ListCarteras(ctx context.Context) ([]models.Cartera, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "carteras")

	var raw []map[string]interface{}
	if err := c.do(ctx, "GET", endpoint, nil, &raw); err != nil {
		return nil, err
	}
	result := make([]models.Cartera, 0, len(raw))
	for _, entry := range raw {
		item := models.Cartera{Nombre: strings.TrimSpace(normalizeToString(firstOf(entry, "nombre", "Nombre")))}
		if id, ok := normalizeToInt64(firstOf(entry, "id", "Id")); ok {
			item.Id = id
		}
		result = append(result, item)
	}
	return result, nil
}

// ListClientesCartera retorna los clientes de una cartera.
func (c *OperacionesCRUDClient) ListClientesCartera(ctx context.Context, carteraID int64) ([]models.Cliente, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "carteras", strconv.FormatInt(carteraID, 10), "clientes")

	var raw []map[string]interface{}
	if err := c.do(ctx, "GET", endpoint, nil, &raw); err != nil {
		return nil, err
	}
	result := make([]models.Cliente, 0, len(raw))
	for _, entry := range raw {
		item := models.Cliente{
			CarteraId: carteraID,
			Nombre:    strings.TrimSpace(normalizeToString(firstOf(entry, "nombre", "Nombre"))),
		}
		if id, ok := normalizeToInt64(firstOf(entry, "id", "Id")); ok {
			item.Id = id
		}
		if id, ok := normalizeToInt64(firstOf(entry, "cartera_id", "CarteraId")); ok && id > 0 {
			item.CarteraId = id
		}
		result = append(result, item)
	}
	return result, nil
}

// ListNodosCliente retorna los nodos de un cliente.
func (c *OperacionesCRUDClient) ListNodosCliente(ctx context.Context, clienteID int64) ([]models.Nodo, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "clientes", strconv.FormatInt(clienteID, 10), "nodos")

	var raw []map[string]interface{}
	if err := c.do(ctx, "GET", endpoint, nil, &raw); err != nil {
		return nil, err
	}
	result := make([]models.Nodo, 0, len(raw))
	for _, entry := range raw {
		item := models.Nodo{
			ClienteId: clienteID,
			Nombre:    strings.TrimSpace(normalizeToString(firstOf(entry, "nombre", "Nombre"))),
		}
		if id, ok := normalizeToInt64(firstOf(entry, "id", "Id")); ok {
			item.Id = id
		}
		result = append(result, item)
	}
	return result, nil
}

// ---------------------------------------------------------------- prerrequisitos

// GetPrerrequisitosClientes retorna el mapeo de tipos de documento requeridos por cliente.
func (c *OperacionesCRUDClient) GetPrerrequisitosClientes(ctx context.Context) ([]models.PrerrequisitosCliente, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "prerequisitos", "clientes")

	var raw []struct {
		ClienteId       models.FlexInt `json:"cliente_id"`
		TiposRequeridos []string       `json:"tipos_requeridos"`
	}
	if err := c.do(ctx, "GET", endpoint, nil, &raw); err != nil {
		return nil, err
	}
	result := make([]models.PrerrequisitosCliente, 0, len(raw))
	for _, entry := range raw {
		result = append(result, models.PrerrequisitosCliente{
			ClienteId:       entry.ClienteId.Int64(),
			TiposRequeridos: entry.TiposRequeridos,
		})
	}
	return result, nil
}

// MatchPrerrequisitos consulta el match precalculado para un rut. Un 404 indica
// que el backend no soporta el endpoint y se entrega tal cual para que el
// servicio haga el cálculo local.
func (c *OperacionesCRUDClient) MatchPrerrequisitos(ctx context.Context, clienteID int64, rut string) (*models.ResultadoMatch, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "prerequisitos", "clientes", strconv.FormatInt(clienteID, 10), "match")
	values := url.Values{}
	values.Set("rut", strings.TrimSpace(rut))
	urlWithQuery := endpoint + "?" + values.Encode()

	var result models.ResultadoMatch
	if err := c.do(ctx, "GET", urlWithQuery, nil, &result); err != nil {
		return nil, err
	}
	if result.Faltantes == nil {
		result.Faltantes = []string{}
	}
	result.Cumple = len(result.Faltantes) == 0
	return &result, nil
}

// MatchPrerrequisitosBatch consulta el match por lote. 404 se entrega tal cual.
func (c *OperacionesCRUDClient) MatchPrerrequisitosBatch(ctx context.Context, clienteID int64, ruts []string) ([]models.ResultadoMatch, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "prerequisitos", "clientes", strconv.FormatInt(clienteID, 10), "match")

	body := map[string]interface{}{"ruts": ruts}
	var result []models.ResultadoMatch
	if err := c.do(ctx, "POST", endpoint, body, &result); err != nil {
		return nil, err
	}
	for i := range result {
		if result[i].Faltantes == nil {
			result[i].Faltantes = []string{}
		}
		result[i].Cumple = len(result[i].Faltantes) == 0
	}
	return result, nil
}

// ---------------------------------------------------------------- programación

type programacionRecord struct {
	Id             models.FlexInt  `json:"id"`
	Rut            string          `json:"rut"`
	CarteraId      models.FlexInt  `json:"cartera_id"`
	ClienteId      *models.FlexInt `json:"cliente_id"`
	NodoId         *models.FlexInt `json:"nodo_id"`
	SemanaInicio   string          `json:"semana_inicio"`
	Lunes          bool            `json:"lunes"`
	Martes         bool            `json:"martes"`
	Miercoles      bool            `json:"miercoles"`
	Jueves         bool            `json:"jueves"`
	Viernes        bool            `json:"viernes"`
	Sabado         bool            `json:"sabado"`
	Domingo        bool            `json:"domingo"`
	HorasEstimadas float64         `json:"horas_estimadas"`
	Observaciones  string          `json:"observaciones"`
	Estado         string          `json:"estado"`
}

func mapProgramacion(raw programacionRecord) models.Programacion {
	p := models.Programacion{
		Id:             raw.Id.Int64(),
		Rut:            strings.TrimSpace(raw.Rut),
		CarteraId:      raw.CarteraId.Int64(),
		SemanaInicio:   strings.TrimSpace(raw.SemanaInicio),
		Lunes:          raw.Lunes,
		Martes:         raw.Martes,
		Miercoles:      raw.Miercoles,
		Jueves:         raw.Jueves,
		Viernes:        raw.Viernes,
		Sabado:         raw.Sabado,
		Domingo:        raw.Domingo,
		HorasEstimadas: raw.HorasEstimadas,
		Observaciones:  strings.TrimSpace(raw.Observaciones),
		Estado:         strings.TrimSpace(raw.Estado),
	}
	if raw.ClienteId != nil && raw.ClienteId.Int64() > 0 {
		id := raw.ClienteId.Int64()
		p.ClienteId = &id
	}
	if raw.NodoId != nil && raw.NodoId.Int64() > 0 {
		id := raw.NodoId.Int64()
		p.NodoId = &id
	}
	return p
}

// CreateProgramacion crea (upsert) una programación. El 409 del backend se entrega
// como *helpers.HTTPError para que el servicio aplique la regla de duplicado benigno.
func (c *OperacionesCRUDClient) CreateProgramacion(ctx context.Context, p models.Programacion) (*models.Programacion, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "programacion")

	var created programacionRecord
	if err := c.do(ctx, "POST", endpoint, p, &created); err != nil {
		return nil, err
	}
	out := mapProgramacion(created)
	return &out, nil
}

// UpdateProgramacion reemplaza el registro completo (el backend no soporta parches
// por campo: el set de días viaja entero).
func (c *OperacionesCRUDClient) UpdateProgramacion(ctx context.Context, id int64, p models.Programacion) (*models.Programacion, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "programacion", strconv.FormatInt(id, 10))

	var updated programacionRecord
	if err := c.do(ctx, "PUT", endpoint, p, &updated); err != nil {
		return nil, err
	}
	out := mapProgramacion(updated)
	return &out, nil
}

// DeleteProgramacion elimina una programación por id.
func (c *OperacionesCRUDClient) DeleteProgramacion(ctx context.Context, id int64) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "programacion", strconv.FormatInt(id, 10))
	return c.do(ctx, "DELETE", endpoint, nil, nil)
}

// GetProgramacion recupera una programación por id.
func (c *OperacionesCRUDClient) GetProgramacion(ctx context.Context, id int64) (*models.Programacion, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "programacion", strconv.FormatInt(id, 10))

	var raw programacionRecord
	if err := c.do(ctx, "GET", endpoint, nil, &raw); err != nil {
		return nil, err
	}
	out := mapProgramacion(raw)
	return &out, nil
}

// ListProgramacionCartera lista las programaciones de una cartera para una semana.
func (c *OperacionesCRUDClient) ListProgramacionCartera(ctx context.Context, carteraID int64, semana string) ([]models.Programacion, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "programacion", "cartera", strconv.FormatInt(carteraID, 10))
	values := url.Values{}
	if trimmed := strings.TrimSpace(semana); trimmed != "" {
		values.Set("semana", trimmed)
	}
	urlWithQuery := endpoint
	if encoded := values.Encode(); encoded != "" {
		urlWithQuery = endpoint + "?" + encoded
	}
	return c.listProgramacion(ctx, urlWithQuery)
}

// ListProgramacionSemana lista las programaciones globales de una semana.
func (c *OperacionesCRUDClient) ListProgramacionSemana(ctx context.Context, fecha string) ([]models.Programacion, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "programacion", "semana")
	values := url.Values{}
	values.Set("fecha", strings.TrimSpace(fecha))
	return c.listProgramacion(ctx, endpoint+"?"+values.Encode())
}

// ListProgramacionOptimizada consulta la variante con rango de fechas del backend.
func (c *OperacionesCRUDClient) ListProgramacionOptimizada(ctx context.Context, carteraID int64, inicio, fin string) ([]models.Programacion, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	endpoint := rootservices.BuildURL(c.cfg.OperacionesCRUDBaseURL, "programacion-optimizada")
	values := url.Values{}
	values.Set("cartera_id", strconv.FormatInt(carteraID, 10))
	values.Set("fecha_inicio", strings.TrimSpace(inicio))
	values.Set("fecha_fin", strings.TrimSpace(fin))
	return c.listProgramacion(ctx, endpoint+"?"+values.Encode())
}

func (c *OperacionesCRUDClient) listProgramacion(ctx context.Context, urlWithQuery string) ([]models.Programacion, error) {
	var raw []programacionRecord
	if err := c.do(ctx, "GET", urlWithQuery, nil, &raw); err != nil {
		return nil, err
	}
	result := make([]models.Programacion, 0, len(raw))
	for _, item := range raw {
		result = append(result, mapProgramacion(item))
	}
	return result, nil
}

// ---------------------------------------------------------------- utilitarios

func ctxErr(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func normalizeToInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case json.Number:
		if parsed, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return parsed, true
		}
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			if parsed, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
				return parsed, true
			}
		}
	}
	return 0, false
}

func normalizeToBool(value interface{}, def bool) bool {
	switch v := value.(type) {
	case nil:
		return def
	case bool:
		return v
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			lower := strings.ToLower(trimmed)
			return lower == "true" || lower == "1" || lower == "si"
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return def
}

// normaliza cualquier valor a string (trim), útil para leer campos dinámicos del CRUD
func normalizeToString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		if b, err := json.Marshal(v); err == nil {
			return strings.TrimSpace(string(b))
		}
		return fmt.Sprintf("%v", v)
	}
}

func parseTimeValue(value string) time.Time {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t
		}
	}
	return time.Time{}
}
