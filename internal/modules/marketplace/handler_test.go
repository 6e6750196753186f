package marketplace

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eduforge/core/internal/middleware"
	"github.com/eduforge/core/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// newPurchaseRouter mounts the marketplace routes behind the same middleware
// chain the app uses, with a stubbed identity instead of a real token.
func newPurchaseRouter(svc *Service, studentID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
	})

	authMW := func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, studentID)
		c.Set(middleware.ContextKeyUserRole, models.RoleStudent)
		c.Next()
	}

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.Idempotence(rdb))
	NewHandler(svc).RegisterRoutes(api, authMW)
	return r
}

func TestPurchaseEndpointRepeatsReportSuccess(t *testing.T) {
	svc, _, db := newTestService(t)
	studentID := seedStudent(t, db, "Lia", "lia@example.com")
	itemID, _ := seedQuestionSetItem(t, svc, db, 19.90)

	router := newPurchaseRouter(svc, studentID)

	for attempt := 1; attempt <= 2; attempt++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/marketplace/"+itemID+"/purchase", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d, want 200", attempt, w.Code)
		}
		var body struct {
			Success bool `json:"success"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("attempt %d: decode body: %v", attempt, err)
		}
		if !body.Success {
			t.Fatalf("attempt %d: success = false, want true", attempt)
		}
	}

	var purchases int64
	db.Model(&models.PurchaseModel{}).Where("student_id = ?", studentID).Count(&purchases)
	if purchases != 1 {
		t.Fatalf("purchase rows = %d, want 1", purchases)
	}
}
