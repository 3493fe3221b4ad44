package mockapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"vehicleagent/internal/model"
	"vehicleagent/internal/repository"
)

// Server is the mock vehicle backend: static catalog lookups plus canned
// booking and negotiation responses. It stands in for a real dealer API.
type Server struct {
	catalog          *repository.Catalog
	bookFixture      map[string]any
	negotiateFixture map[string]any
}

// NewServer creates a mock backend over the given catalog, loading the
// booking and negotiation fixtures from dataDir.
func NewServer(catalog *repository.Catalog, dataDir string) (*Server, error) {
	book, err := loadFixture(filepath.Join(dataDir, "product_book.json"))
	if err != nil {
		return nil, err
	}
	negotiate, err := loadFixture(filepath.Join(dataDir, "product_negotiate.json"))
	if err != nil {
		return nil, err
	}

	return &Server{
		catalog:          catalog,
		bookFixture:      book,
		negotiateFixture: negotiate,
	}, nil
}

// RegisterRoutes mounts the backend endpoints on the router
func (s *Server) RegisterRoutes(router *gin.Engine) {
	router.GET("/search", s.Search)
	router.GET("/compare", s.Compare)
	router.POST("/book", s.Book)
	router.POST("/negotiate", s.Negotiate)
}

// Search handles GET /search with optional make/model/type filters
func (s *Server) Search(c *gin.Context) {
	results := s.catalog.Filter(
		c.Query("make"),
		c.Query("model"),
		c.Query("type"),
	)
	c.JSON(http.StatusOK, results)
}

// Compare handles GET /compare. A side whose id is unknown comes back
// null; the verdict is only available when both sides resolve.
func (s *Server) Compare(c *gin.Context) {
	id1 := c.Query("vehicle1_id")
	id2 := c.Query("vehicle2_id")
	if id1 == "" || id2 == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vehicle1_id and vehicle2_id are required"})
		return
	}

	var v1, v2 *model.Vehicle
	if v, ok := s.catalog.FindByID(id1); ok {
		v1 = &v
	}
	if v, ok := s.catalog.FindByID(id2); ok {
		v2 = &v
	}

	verdict := "Comparison not available."
	if v1 != nil && v2 != nil {
		verdict = fmt.Sprintf("Comparing %s %s vs %s %s. %s is known for %s, while %s offers %s.",
			v1.Make, v1.Model, v2.Make, v2.Model,
			v1.Make, strings.ToLower(firstFeature(v1)),
			v2.Make, strings.ToLower(firstFeature(v2)))
	}

	c.JSON(http.StatusOK, gin.H{
		"comparison": gin.H{
			"vehicle1": v1,
			"vehicle2": v2,
			"verdict":  verdict,
		},
	})
}

// bookingRequest mirrors the POST /book wire payload
type bookingRequest struct {
	VehicleID    string `json:"vehicle_id" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	Date         string `json:"date" binding:"required"`
}

// Book handles POST /book. Every well-formed request books successfully.
func (s *Server) Book(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response := make(map[string]any, len(s.bookFixture)+1)
	for k, v := range s.bookFixture {
		response[k] = v
	}
	response["booking_details"] = req

	c.JSON(http.StatusOK, response)
}

// negotiationRequest mirrors the POST /negotiate wire payload
type negotiationRequest struct {
	VehicleID  string  `json:"vehicle_id" binding:"required"`
	OfferPrice float64 `json:"offer_price" binding:"required"`
}

// Negotiate handles POST /negotiate with the canned outcome.
func (s *Server) Negotiate(c *gin.Context) {
	var req negotiationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.negotiateFixture)
}

func firstFeature(v *model.Vehicle) string {
	if len(v.Features) == 0 {
		return "its overall value"
	}
	return v.Features[0]
}

func loadFixture(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	var fixture map[string]any
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return fixture, nil
}
