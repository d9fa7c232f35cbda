package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/almacen-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/almacen-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "maria"
	testEmail     = "maria@example.com"
	testIssuer    = "almacen-api-test"
	testExpMin    = 60
)

// buildProtectedApp construye una aplicación Fiber mínima con AuthMiddleware
// y un handler dummy que devuelve los claims cargados en locals.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"user_id":  apphttp.GetUserID(c),
				"username": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

// validToken genera un JWT de prueba firmado con el secret de test.
func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, testEmail, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// doProtected lanza una petición GET /protected con el header indicado.
func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — token ausente vs token inválido
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Sin header Authorization → HTTP 403 MISSING_TOKEN.
// La distinción 403/401 es contrato de la API: el frontend trata el 403 como
// "sesión no iniciada" y el 401 como "sesión vencida".
func TestAuthMiddleware_SinHeader_Retorna403(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
	assert.Contains(t, string(body), "No token provided")
}

// Caso 1b: Header presente pero sin token tras "Bearer" → también 403.
func TestAuthMiddleware_BearerSinToken_Retorna403(t *testing.T) {
	app := buildProtectedApp()

	for _, header := range []string{"Bearer", "Bearer ", "Bearer   "} {
		resp := doProtected(t, app, header)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode,
			"header %q debe tratarse como token ausente", header)
		resp.Body.Close()
	}
}

// Caso 2: Token malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

// Caso 3: Token expirado → HTTP 401.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	// Expiración -1 minuto: ya vencido al emitirse
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, testEmail, testIssuer, -1)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: Token firmado con otro secret → HTTP 401.
func TestAuthMiddleware_SecretIncorrecto_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	tok, err := pkgjwt.Generate("otro-secret-completamente-distinto", testUserID, testUsername, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token válido → pasa y los claims quedan en locals.
func TestAuthMiddleware_TokenValido_ExtraeClaims(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtected(t, app, "Bearer "+validToken(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testUsername, body["username"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testUsername, claims.Username)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testUsername, testEmail, testIssuer, testExpMin)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "cualquier-token")
	assert.Error(t, err)
}
