package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/pharmacy-tasks/internal/models"
	"github.com/yukikurage/pharmacy-tasks/internal/repository"
	"github.com/yukikurage/pharmacy-tasks/internal/services"
	"github.com/yukikurage/pharmacy-tasks/internal/testutil"
	"github.com/yukikurage/pharmacy-tasks/internal/web"
	"gorm.io/gorm"
)

// PageHandlerTestSuite defines the test suite for PageHandler
type PageHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *PageHandler
	router  *gin.Engine
	clock   time.Time
}

// SetupTest runs before each test
func (suite *PageHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = testutil.NewInMemoryDB()
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	pharmacyRepo := repository.NewPharmacyRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	commentRepo := repository.NewCommentRepository(suite.db)

	suite.handler = NewPageHandler(
		services.NewTaskService(taskRepo, commentRepo, pharmacyRepo, userRepo),
		services.NewPharmacyService(pharmacyRepo),
		5,
	)
	suite.router = newTestRouter(suite.T(), suite.handler)
	suite.clock = time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
}

// TearDownTest runs after each test
func (suite *PageHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func newTestRouter(t *testing.T, h *PageHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)

	tmpl, err := web.Templates()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.GET("/", h.Home)
	r.GET("/tasks/", h.TaskList)
	r.GET("/pharmacies/", h.PharmacyList)
	r.GET("/tasks/:id/", h.TaskDetail)
	return r
}

func (suite *PageHandlerTestSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PageHandlerTestSuite) tick() time.Time {
	suite.clock = suite.clock.Add(time.Minute)
	return suite.clock
}

// Helper functions to create test data
func (suite *PageHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{Username: username, PasswordHash: "hashedpassword"}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *PageHandlerTestSuite) createTestPharmacy(name, license string) *models.Pharmacy {
	pharmacy := &models.Pharmacy{Name: name, LicenseNumber: license, Address: "1 Main Street"}
	suite.Require().NoError(suite.db.Create(pharmacy).Error)
	return pharmacy
}

func (suite *PageHandlerTestSuite) createTestTask(title string, pharmacyID, userID uint64) *models.Task {
	task := &models.Task{
		Title:        title,
		Description:  "Test Description",
		PharmacyID:   pharmacyID,
		AssignedToID: userID,
		CreatedByID:  userID,
		CreatedAt:    suite.tick(),
	}
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

func (suite *PageHandlerTestSuite) createTestComment(taskID, authorID uint64, content string) {
	comment := &models.TaskComment{TaskID: taskID, AuthorID: authorID, Content: content, CreatedAt: suite.tick()}
	suite.Require().NoError(suite.db.Create(comment).Error)
}

// TestHome_ShowsFiveLatestTasksAndPharmacies tests the home page context
func (suite *PageHandlerTestSuite) TestHome_ShowsFiveLatestTasksAndPharmacies() {
	user := suite.createTestUser("alice")
	central := suite.createTestPharmacy("Central Pharmacy", "LIC-1")
	suite.createTestPharmacy("North Pharmacy", "LIC-2")
	for _, title := range []string{"task-01", "task-02", "task-03", "task-04", "task-05", "task-06"} {
		suite.createTestTask(title, central.ID, user.ID)
	}

	w := suite.get("/")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(suite.T(), body, "task-01")
	for _, title := range []string{"task-02", "task-03", "task-04", "task-05", "task-06"} {
		assert.Contains(suite.T(), body, title)
	}
	assert.Less(suite.T(), strings.Index(body, "task-06"), strings.Index(body, "task-02"))
	assert.Contains(suite.T(), body, "North Pharmacy")
}

// TestHome_Empty tests the home page with an empty store
func (suite *PageHandlerTestSuite) TestHome_Empty() {
	w := suite.get("/")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "No tasks yet.")
}

// TestTaskList_NewestFirst tests the task list order
func (suite *PageHandlerTestSuite) TestTaskList_NewestFirst() {
	user := suite.createTestUser("alice")
	pharmacy := suite.createTestPharmacy("Central Pharmacy", "LIC-1")
	for _, title := range []string{"oldest-task", "middle-task", "newest-task"} {
		suite.createTestTask(title, pharmacy.ID, user.ID)
	}

	w := suite.get("/tasks/")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	newest := strings.Index(body, "newest-task")
	middle := strings.Index(body, "middle-task")
	oldest := strings.Index(body, "oldest-task")
	assert.True(suite.T(), newest >= 0 && newest < middle && middle < oldest)
	assert.Contains(suite.T(), body, "Pending")
	assert.Contains(suite.T(), body, "Medium")
}

// TestPharmacyList tests the pharmacy list
func (suite *PageHandlerTestSuite) TestPharmacyList() {
	suite.createTestPharmacy("Central Pharmacy", "LIC-100")

	w := suite.get("/pharmacies/")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Central Pharmacy")
	assert.Contains(suite.T(), w.Body.String(), "LIC-100")
}

// TestTaskDetail_Success tests the detail page with comments in order
func (suite *PageHandlerTestSuite) TestTaskDetail_Success() {
	user := suite.createTestUser("alice")
	pharmacy := suite.createTestPharmacy("Central Pharmacy", "LIC-1")
	task := suite.createTestTask("Check fridge temperature", pharmacy.ID, user.ID)
	suite.createTestComment(task.ID, user.ID, "first-comment")
	suite.createTestComment(task.ID, user.ID, "second-comment")

	w := suite.get("/tasks/1/")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(suite.T(), body, "Check fridge temperature")
	assert.Contains(suite.T(), body, "Central Pharmacy")
	first := strings.Index(body, "first-comment")
	second := strings.Index(body, "second-comment")
	assert.True(suite.T(), first >= 0 && first < second)
}

// TestTaskDetail_NotFound tests a missing task id
func (suite *PageHandlerTestSuite) TestTaskDetail_NotFound() {
	w := suite.get("/tasks/999/")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "No task matches the given query.")
}

// TestTaskDetail_InvalidID tests a non-integer id
func (suite *PageHandlerTestSuite) TestTaskDetail_InvalidID() {
	for _, path := range []string{"/tasks/abc/", "/tasks/-1/", "/tasks/99999999999999999999/"} {
		w := suite.get(path)
		assert.Equal(suite.T(), http.StatusNotFound, w.Code, path)
	}
}

// TestTaskDetail_DeletedPharmacy tests that cascaded tasks disappear from the pages
func (suite *PageHandlerTestSuite) TestTaskDetail_DeletedPharmacy() {
	user := suite.createTestUser("alice")
	pharmacy := suite.createTestPharmacy("Central Pharmacy", "LIC-1")
	task := suite.createTestTask("Soon gone", pharmacy.ID, user.ID)

	suite.Require().NoError(repository.NewPharmacyRepository(suite.db).Delete(context.Background(), pharmacy.ID))

	w := suite.get(fmt.Sprintf("/tasks/%d/", task.ID))
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = suite.get("/tasks/")
	assert.NotContains(suite.T(), w.Body.String(), "Soon gone")
}

// TestSuite runs the test suite
func TestPageHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PageHandlerTestSuite))
}

type failingTasks struct{}

func (failingTasks) ListRecent(context.Context, int) ([]models.Task, error) {
	return nil, errors.New("database is down")
}

func (failingTasks) ListAll(context.Context) ([]models.Task, error) {
	return nil, errors.New("database is down")
}

func (failingTasks) GetWithComments(context.Context, uint64) (*models.Task, []models.TaskComment, error) {
	return nil, nil, errors.New("database is down")
}

type failingPharmacies struct{}

func (failingPharmacies) ListAll(context.Context) ([]models.Pharmacy, error) {
	return nil, errors.New("database is down")
}

func TestPages_StoreFailureRendersErrorPage(t *testing.T) {
	r := newTestRouter(t, NewPageHandler(failingTasks{}, failingPharmacies{}, 0))

	for _, path := range []string{"/", "/tasks/", "/pharmacies/", "/tasks/1/"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code, path)
		assert.Contains(t, w.Body.String(), "Server error", path)
		assert.NotContains(t, w.Body.String(), "database is down", path)
	}
}
