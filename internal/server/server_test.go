package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	auditdomain "github.com/atriumhq/atrium/internal/audit/domain"
	auditrepository "github.com/atriumhq/atrium/internal/audit/repository"
	auditservice "github.com/atriumhq/atrium/internal/audit/service"
	authdomain "github.com/atriumhq/atrium/internal/auth/domain"
	authrepository "github.com/atriumhq/atrium/internal/auth/repository"
	authservice "github.com/atriumhq/atrium/internal/auth/service"
	"github.com/atriumhq/atrium/internal/auth/session"
	clientdomain "github.com/atriumhq/atrium/internal/client/domain"
	clientrepository "github.com/atriumhq/atrium/internal/client/repository"
	clientservice "github.com/atriumhq/atrium/internal/client/service"
	"github.com/atriumhq/atrium/internal/config"
	departmentdomain "github.com/atriumhq/atrium/internal/department/domain"
	departmentrepository "github.com/atriumhq/atrium/internal/department/repository"
	departmentservice "github.com/atriumhq/atrium/internal/department/service"
	employeedomain "github.com/atriumhq/atrium/internal/employee/domain"
	employeerepository "github.com/atriumhq/atrium/internal/employee/repository"
	employeeservice "github.com/atriumhq/atrium/internal/employee/service"
	"github.com/atriumhq/atrium/internal/events"
	invoicedomain "github.com/atriumhq/atrium/internal/invoice/domain"
	invoicerepository "github.com/atriumhq/atrium/internal/invoice/repository"
	invoiceservice "github.com/atriumhq/atrium/internal/invoice/service"
	"github.com/atriumhq/atrium/internal/payroll"
	projectdomain "github.com/atriumhq/atrium/internal/project/domain"
	projectrepository "github.com/atriumhq/atrium/internal/project/repository"
	projectservice "github.com/atriumhq/atrium/internal/project/service"
	scanservice "github.com/atriumhq/atrium/internal/scan/service"
)

type fakeRecognizer struct {
	text string
	err  error
}

func (f *fakeRecognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	return f.text, f.err
}

func newTestServer(t *testing.T, rec *fakeRecognizer) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(
		&authdomain.User{},
		&authdomain.Session{},
		&employeedomain.Employee{},
		&departmentdomain.Department{},
		&projectdomain.Project{},
		&clientdomain.Client{},
		&invoicedomain.Invoice{},
		&auditdomain.AuditLog{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	log := zap.NewNop()
	bus := events.NewBus(log)
	cfg := config.Config{SessionTTLHours: 1, ScanPendingMax: 8}

	employeeRepo := employeerepository.Provide(conn)
	departmentRepo := departmentrepository.Provide(conn)
	projectRepo := projectrepository.Provide(conn)
	clientRepo := clientrepository.Provide()
	invoiceRepo := invoicerepository.Provide()

	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	return NewServer(ServerParams{
		Gin:      engine,
		Cfg:      cfg,
		DB:       conn,
		GenID:    node,
		Sessions: session.NewManager(cfg),
		AuthSvc: authservice.New(authservice.Params{
			Cfg:      cfg,
			Log:      log,
			GenID:    node,
			Users:    authrepository.Provide(conn),
			Sessions: authrepository.ProvideSessions(conn),
		}),
		AuditSvc: auditservice.New(auditservice.Params{
			DB:    conn,
			Log:   log,
			GenID: node,
			Repo:  auditrepository.Provide(),
		}),
		EmployeeSvc: employeeservice.New(employeeservice.Params{
			Log:   log,
			GenID: node,
			Repo:  employeeRepo,
		}),
		DepartmentSvc: departmentservice.New(departmentservice.Params{
			Log:       log,
			GenID:     node,
			Repo:      departmentRepo,
			Employees: employeeRepo,
		}),
		ProjectSvc: projectservice.New(projectservice.Params{
			Log:   log,
			GenID: node,
			Repo:  projectRepo,
		}),
		ClientSvc: clientservice.New(clientservice.Params{
			DB:    conn,
			Log:   log,
			GenID: node,
			Repo:  clientRepo,
			Bus:   bus,
		}),
		InvoiceSvc: invoiceservice.New(invoiceservice.Params{
			DB:    conn,
			Log:   log,
			GenID: node,
			Repo:  invoiceRepo,
			Bus:   bus,
		}),
		PayrollSvc: payroll.New(payroll.Params{
			Log:       log,
			Employees: employeeRepo,
		}),
		ScanSvc: scanservice.New(scanservice.Params{
			Cfg:        cfg,
			Log:        log,
			DB:         conn,
			GenID:      node,
			Bus:        bus,
			Recognizer: rec,
			Invoices:   invoiceRepo,
			Clients:    clientRepo,
		}),
		EmployeeRepo:   employeeRepo,
		DepartmentRepo: departmentRepo,
		ProjectRepo:    projectRepo,
		ClientRepo:     clientRepo,
	})
}

func doJSON(t *testing.T, s *Server, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == session.DefaultCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func loginAs(t *testing.T, s *Server, email string) *http.Cookie {
	t.Helper()

	w := doJSON(t, s, http.MethodPost, "/auth/signup", gin.H{
		"email":    email,
		"password": "a-long-password",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, s, http.MethodPost, "/auth/login", gin.H{
		"email":    email,
		"password": "a-long-password",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return sessionCookie(t, w)
}

func TestSignupLoginAndMe(t *testing.T) {
	s := newTestServer(t, &fakeRecognizer{})
	cookie := loginAs(t, s, "robin@example.com")

	w := doJSON(t, s, http.MethodGet, "/auth/me", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data authdomain.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "robin@example.com", resp.Data.Email)
}

func TestAPIRequiresSession(t *testing.T) {
	s := newTestServer(t, &fakeRecognizer{})

	w := doJSON(t, s, http.MethodGet, "/api/employees", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	s := newTestServer(t, &fakeRecognizer{})
	loginAs(t, s, "casey@example.com")

	w := doJSON(t, s, http.MethodPost, "/auth/login", gin.H{
		"email":    "casey@example.com",
		"password": "wrong-password",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEmployeeLifecycle(t *testing.T) {
	s := newTestServer(t, &fakeRecognizer{})
	cookie := loginAs(t, s, "drew@example.com")

	w := doJSON(t, s, http.MethodPost, "/api/employees", gin.H{
		"name":       "Sasha Reed",
		"title":      "Engineer",
		"department": "Engineering",
		"salary":     "$95,000",
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		Data employeedomain.Employee `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Data.ID)
	assert.Equal(t, "Active", created.Data.Status)

	w = doJSON(t, s, http.MethodGet, "/api/employees?department=Engineering", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var listed struct {
		Data employeedomain.ListEmployeeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Data.Employees, 1)

	w = doJSON(t, s, http.MethodPatch, "/api/employees/"+created.Data.ID.String(), gin.H{
		"title": "Senior Engineer",
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, s, http.MethodDelete, "/api/employees/"+created.Data.ID.String(), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

const scanText = "Invoice Number: INV-4821\nBuyer Name: Acme Co\nAmount Due: $1,204.50\nDate: March 3, 2024"

func uploadScan(t *testing.T, s *Server, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "invoice.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("not-a-real-image"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/scans", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.AddCookie(cookie)

	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestScanUploadAndConfirm(t *testing.T) {
	s := newTestServer(t, &fakeRecognizer{text: scanText})
	cookie := loginAs(t, s, "morgan@example.com")

	w := uploadScan(t, s, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var processed struct {
		Data struct {
			ScanID    string `json:"scan_id"`
			BuyerName string `json:"buyer_name"`
			Amount    string `json:"amount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &processed))
	require.NotEmpty(t, processed.Data.ScanID)
	assert.Equal(t, "Acme Co", processed.Data.BuyerName)
	assert.Equal(t, "$1,204.50", processed.Data.Amount)

	w = doJSON(t, s, http.MethodPost, "/api/scans/"+processed.Data.ScanID+"/confirm", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var confirmed struct {
		Data struct {
			Invoice invoicedomain.Invoice `json:"invoice"`
			Client  *clientdomain.Client  `json:"client"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &confirmed))
	assert.Equal(t, "Acme Co", confirmed.Data.Invoice.BuyerName)
	require.NotNil(t, confirmed.Data.Client)
	assert.Equal(t, "Acme Co Inc.", confirmed.Data.Client.Company)

	w = doJSON(t, s, http.MethodPost, "/api/scans/"+processed.Data.ScanID+"/confirm", nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code, "a scan confirms at most once")

	w = doJSON(t, s, http.MethodGet, "/api/invoices", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var invoices struct {
		Data invoicedomain.ListInvoiceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &invoices))
	require.Len(t, invoices.Data.Invoices, 1)
}

func TestScanUploadRequiresFile(t *testing.T) {
	s := newTestServer(t, &fakeRecognizer{text: scanText})
	cookie := loginAs(t, s, "jesse@example.com")

	w := doJSON(t, s, http.MethodPost, "/api/scans", nil, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScanRejectsGarbageText(t *testing.T) {
	s := newTestServer(t, &fakeRecognizer{text: "abc"})
	cookie := loginAs(t, s, "quinn@example.com")

	w := uploadScan(t, s, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Could not extract meaningful text")
}

func TestScanReportsRecognizerFailure(t *testing.T) {
	s := newTestServer(t, &fakeRecognizer{err: errors.New("tesseract: corrupted page segment")})
	cookie := loginAs(t, s, "riley@example.com")

	w := uploadScan(t, s, cookie)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Error processing file: tesseract: corrupted page segment")
}

func TestInvoiceManualCreate(t *testing.T) {
	s := newTestServer(t, &fakeRecognizer{})
	cookie := loginAs(t, s, "taylor@example.com")

	w := doJSON(t, s, http.MethodPost, "/api/invoices", gin.H{
		"buyer_name":     "Globex",
		"invoice_number": "INV-0042",
		"amount":         "$250.00",
		"date":           "June 1, 2026",
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		Data invoicedomain.Invoice `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.Data.ID)
	assert.Equal(t, "INV-0042", created.Data.InvoiceNumber)

	w = doJSON(t, s, http.MethodGet, "/api/invoices/"+created.Data.ID.String(), nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var fetched struct {
		Data invoicedomain.Invoice `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Globex", fetched.Data.BuyerName)
}

func TestDashboard(t *testing.T) {
	s := newTestServer(t, &fakeRecognizer{text: scanText})
	cookie := loginAs(t, s, "alex@example.com")

	w := doJSON(t, s, http.MethodPost, "/api/employees", gin.H{"name": "A"}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, s, http.MethodGet, "/api/dashboard", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data dashboardResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp.Data.EmployeeCount)
}
