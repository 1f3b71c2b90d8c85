// helpers/http_client.go
package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// HTTPError envuelve códigos de estado no exitosos para permitir un manejo granular
// (404 de endpoints no desplegados, 409 de programaciones duplicadas, etc).
type HTTPError struct {
	Status int
	Body   string
}

// Error imprime el estado y cuerpo asociado.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// IsHTTPError permite consultar si el error corresponde a un status específico.
func IsHTTPError(err error, status int) bool {
	if err == nil {
		return false
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status == status
	}
	return false
}

// Config global de reintentos. Los servicios nunca reintentan por su cuenta: la
// política vive únicamente en esta capa y es uniforme para todas las llamadas.
var (
	defaultRetryCount  = 0
	defaultBackoffBase = 300 * time.Millisecond
	maxBackoff         = 3 * time.Second
)

// Cliente resty compartido: un solo transporte reutiliza las conexiones hacia el
// CRUD en vez de abrir una nueva por llamada. El timeout por llamada viaja en el
// contexto de la petición, no en el cliente.
var (
	restyOnce   sync.Once
	restyClient *resty.Client
)

func sharedClient() *resty.Client {
	restyOnce.Do(func() {
		restyClient = resty.New().
			SetRetryCount(defaultRetryCount).
			SetRetryWaitTime(defaultBackoffBase).
			SetRetryMaxWaitTime(maxBackoff).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if err != nil {
					return isRetryableErr(err)
				}
				switch r.StatusCode() {
				case 500, 502, 503, 504:
					return true
				}
				return false
			})
	})
	return restyClient
}

func SetDefaultRetryCount(n int) {
	if n < 0 {
		n = 0
	}
	defaultRetryCount = n
	sharedClient().SetRetryCount(n)
}

func SetRetryBackoff(baseMs int) {
	if baseMs <= 0 {
		baseMs = 300
	}
	defaultBackoffBase = time.Duration(baseMs) * time.Millisecond
	sharedClient().SetRetryWaitTime(defaultBackoffBase)
}

// DoJSONWithHeaders ejecuta la llamada sobre el cliente resty compartido, con el
// timeout dado aplicado vía contexto y los reintentos configurados a nivel de
// aplicación. Respuestas fuera de 2xx se entregan como *HTTPError con el cuerpo
// recortado.
func DoJSONWithHeaders(ctx context.Context, method, url string, headers map[string]string, in any, out any, timeout time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req := sharedClient().R().
		SetContext(ctx).
		SetHeader("Accept", "application/json")

	for k, v := range headers {
		if v != "" {
			req.SetHeader(k, v)
		}
	}
	if req.Header.Get("X-Correlation-Id") == "" {
		req.SetHeader("X-Correlation-Id", uuid.NewString())
	}
	if in != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(in)
	}

	resp, err := req.Execute(strings.ToUpper(strings.TrimSpace(method)), url)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return &HTTPError{
			Status: resp.StatusCode(),
			Body:   strings.TrimSpace(string(resp.Body())),
		}
	}

	if out == nil {
		return nil
	}
	body := resp.Body()
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode json %s: %w", url, err)
	}
	return nil
}

func isRetryableErr(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	l := strings.ToLower(err.Error())
	return strings.Contains(l, "timeout") ||
		strings.Contains(l, "connection reset") ||
		strings.Contains(l, "connection refused") ||
		strings.Contains(l, "server closed idle connection")
}
