//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-grocery/backend/config"
	"github.com/smart-grocery/backend/internal/infra/dependency"
	"github.com/smart-grocery/backend/internal/integration/persistence/model"
	"github.com/smart-grocery/backend/test/integration/mock"
)

var (
	testDB   *mock.Db
	timeMock *mock.Time
	server   *httptest.Server
)

type testContext struct {
	uri        string
	headers    map[string]string
	client     *http.Client
	response   *response
	db         *mock.Db
	timeMock   *mock.Time
	lastItemID string
}

type response struct {
	status  int
	headers http.Header
	body    any
}

// InitializeTestSuite starts one API server backed by the in-memory database for the whole run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		testDB = mock.NewDb(map[string]any{
			"grocery_items": &model.GroceryItemModel{},
			"budgets":       &model.BudgetModel{},
			"meal_plans":    &model.MealPlanModel{},
		})
		timeMock = mock.NewTime()

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Server.WriteRateLimit = 0

		injector := dependency.NewInjector(cfg, testDB.DbConn, timeMock, nil)
		server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	})

	ctx.AfterSuite(func() {
		if server != nil {
			server.Close()
		}
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Fixture steps
	ctx.Given(`^a grocery item "([^"]*)" of brand "([^"]*)" expiring on "([^"]*)"$`, test.aGroceryItemExists)
	ctx.Given(`^a budget of "([^"]*)" exists for "([^"]*)" (\d+) with "([^"]*)" spent$`, test.aBudgetExists)

	// Header steps
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response should be a list of (\d+) items?$`, test.theResponseShouldBeAListOf)
	ctx.Then(`^the response body should be null$`, test.theResponseBodyShouldBeNull)
	ctx.Then(`^the response header "([^"]*)" should be "([^"]*)"$`, test.theResponseHeaderShouldBe)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.uri = server.URL
	t.db = testDB
	t.timeMock = timeMock
	t.headers = make(map[string]string)
	t.response = nil
	t.lastItemID = ""

	t.timeMock.Reset()
	return t.db.ClearDB()
}

func (t *testContext) theAPIServerIsRunning() error {
	resp, err := t.client.Get(t.uri + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) todayIs(value string) error {
	today, err := time.Parse(time.RFC3339, value)
	if err != nil {
		today, err = time.Parse("2006-01-02", value)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", value, err)
		}
		today = today.Add(12 * time.Hour)
	}
	t.timeMock.SetCurrentTime(today)
	return nil
}

func (t *testContext) aGroceryItemExists(name, brand, expiry string) error {
	expiryDate, err := time.Parse("2006-01-02", expiry)
	if err != nil {
		return err
	}

	now := t.timeMock.Now()
	item := &model.GroceryItemModel{
		ID:         uuid.New(),
		Name:       name,
		Brand:      brand,
		Quantity:   1,
		Price:      decimal.RequireFromString("2.50"),
		Category:   "Other",
		ExpiryDate: expiryDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := t.db.DbConn.Create(item).Error; err != nil {
		return err
	}

	t.lastItemID = item.ID.String()
	return nil
}

func (t *testContext) aBudgetExists(total, month string, year int, spent string) error {
	now := t.timeMock.Now()
	budget := &model.BudgetModel{
		ID:          uuid.New(),
		TotalBudget: decimal.RequireFromString(total),
		AmountSpent: decimal.RequireFromString(spent),
		Month:       month,
		Year:        year,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(budget).Error
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{{item_id}}", t.lastItemID)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
	}

	var responseBody any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the id of a created grocery item
	if object, ok := responseBody.(map[string]any); ok && method == http.MethodPost {
		if id, ok := object["id"].(string); ok {
			t.lastItemID = id
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeAListOf(quantity int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	items, ok := t.response.body.([]any)
	if !ok {
		return fmt.Errorf("response is not a JSON array: %v", t.response.body)
	}
	if len(items) != quantity {
		return fmt.Errorf("expected %d items, got %d: %v", quantity, len(items), items)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldBeNull() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.body != nil {
		return fmt.Errorf("expected null body, got %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldBe(key, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if actual := t.response.headers.Get(key); actual != expectedValue {
		return fmt.Errorf("header '%s' expected '%s', got '%s'", key, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	field := object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}
