package controller

import (
	"strconv"

	"blogtask/web/service"

	"github.com/gin-gonic/gin"
)

// ServerController exposes panel health and recent log lines.
type ServerController struct {
	BaseController

	serverService service.ServerService
}

// NewServerController creates a new ServerController and sets up its routes.
func NewServerController(g *gin.RouterGroup) *ServerController {
	a := &ServerController{}
	a.initRouter(g)
	return a
}

func (a *ServerController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/server")
	g.Use(a.checkLogin)

	g.GET("/status", a.status)
	g.GET("/logs/:count", a.checkAdmin, a.getLogs)
}

func (a *ServerController) status(c *gin.Context) {
	jsonObj(c, a.serverService.GetStatus(), nil)
}

func (a *ServerController) getLogs(c *gin.Context) {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil {
		jsonMsg(c, "obtain logs", err)
		return
	}
	level := c.DefaultQuery("level", "INFO")
	jsonObj(c, a.serverService.GetLogs(count, level), nil)
}
