package content

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wilardzysenpai/portfolio-core/internal/pkg/response"
)

// Handler serves the static portfolio catalog. The data ships with the
// binary so these endpoints need no database.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects", h.listProjects)
	rg.GET("/projects/:id", h.getProject)
	rg.GET("/skills", h.listSkills)
	rg.GET("/offerings", h.listOfferings)
}

func (h *Handler) listProjects(c *gin.Context) {
	featured, err := strconv.ParseBool(c.DefaultQuery("featured", "false"))
	if err != nil {
		response.BadRequest(c, "featured must be a boolean")
		return
	}
	if !featured {
		response.OK(c, projects)
		return
	}
	out := make([]Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	response.OK(c, out)
}

func (h *Handler) getProject(c *gin.Context) {
	id := c.Param("id")
	for i := range projects {
		if projects[i].ID == id {
			response.OK(c, projects[i])
			return
		}
	}
	response.NotFound(c, "Project not found")
}

func (h *Handler) listSkills(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		out := make([]Skill, 0, len(skills))
		for _, s := range skills {
			if s.Category == category {
				out = append(out, s)
			}
		}
		response.OK(c, out)
		return
	}
	response.OK(c, skills)
}

func (h *Handler) listOfferings(c *gin.Context) {
	response.OK(c, offerings)
}
