package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"golang.org/x/crypto/bcrypt"

	api "github.com/hemolabs/labelstock/internal/http"
	handler "github.com/hemolabs/labelstock/internal/http/handlers"
	"github.com/hemolabs/labelstock/internal/importer"
	"github.com/hemolabs/labelstock/internal/models"
	"github.com/hemolabs/labelstock/internal/repo"
	"github.com/hemolabs/labelstock/internal/syncsvc"
)

var (
	token       string
	productRepo *repo.InMemoryProductRepository
	syncLogRepo *repo.InMemorySyncLogRepository
	syncClient  *fakeSyncClient
)

// fakeSyncClient stands in for the remote endpoints: it records every
// pushed batch and fails on demand.
type fakeSyncClient struct {
	failWith error
	pushed   [][]models.ProductFlat
	remote   []models.ProductFlat
}

func (f *fakeSyncClient) PushFlat(ctx context.Context, flats []models.ProductFlat) syncsvc.Result {
	res := syncsvc.Result{Endpoint: "fake", Records: len(flats)}
	if f.failWith != nil {
		res.Outcome = models.SyncOutcomeFailed
		res.Err = f.failWith
		return res
	}
	f.pushed = append(f.pushed, flats)
	res.Outcome = models.SyncOutcomeOK
	return res
}

func (f *fakeSyncClient) Push(ctx context.Context, products []models.Product) syncsvc.Result {
	return f.PushFlat(ctx, models.FlattenAll(products))
}

func (f *fakeSyncClient) FetchList(ctx context.Context) ([]models.ProductFlat, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.remote, nil
}

func (f *fakeSyncClient) reset() {
	f.failWith = nil
	f.pushed = nil
	f.remote = nil
}

func init() {
	setupTestRepos("secret1")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret1")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	syncLogRepo = repo.NewInMemorySyncLogRepository()
	handler.SetSyncLogRepo(syncLogRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
	})

	syncClient = &fakeSyncClient{}
	handler.SetSyncClient(syncClient)

	handler.SetImportEngine(importer.NewEngine(0))
}

func clearAll() {
	productRepo.Clear()
	syncLogRepo.Clear()
	syncClient.reset()
}

func failSync() {
	syncClient.failWith = errors.New("remote unreachable")
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func saveProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartFile(content []byte, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write(content)

	writer.Close()
	return &buf, writer.FormDataContentType()
}
