package controller

import (
	"net/http"
	"strconv"

	"blogtask/database"
	"blogtask/database/model"
	"blogtask/database/repository"
	"blogtask/web/service"

	"github.com/gin-gonic/gin"
)

// RoleController handles HTTP requests related to roles. All mutations are
// administrator only.
type RoleController struct {
	BaseController
}

// NewRoleController creates a new RoleController and sets up its routes.
func NewRoleController(g *gin.RouterGroup) *RoleController {
	a := &RoleController{}
	a.initRouter(g)
	return a
}

func (a *RoleController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/role")

	g.GET("/list", a.getRoles)
	g.GET("/get/:id", a.getRole)

	g.POST("/add", a.checkLogin, a.checkAdmin, a.addRole)
	g.POST("/update/:id", a.checkLogin, a.checkAdmin, a.updateRole)
	g.POST("/del/:id", a.checkLogin, a.checkAdmin, a.delRole)
}

func (a *RoleController) roleService() (*service.RoleService, *repository.UnitOfWork) {
	uow := repository.NewUnitOfWork(database.GetDB())
	return service.NewRoleService(uow), uow
}

func (a *RoleController) getRoles(c *gin.Context) {
	svc, uow := a.roleService()
	defer uow.Close()

	roles, err := svc.GetAll()
	if err != nil {
		jsonMsg(c, "obtain roles", err)
		return
	}
	jsonObj(c, roles, nil)
}

func (a *RoleController) getRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "obtain role", err)
		return
	}

	svc, uow := a.roleService()
	defer uow.Close()

	role, err := svc.GetByNumericID(id)
	if err != nil {
		jsonMsg(c, "obtain role", err)
		return
	}
	if role == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "role not found")
		return
	}
	jsonObj(c, role, nil)
}

func (a *RoleController) addRole(c *gin.Context) {
	role := &model.Role{}
	if err := c.ShouldBind(role); err != nil {
		jsonMsg(c, "add role", err)
		return
	}

	svc, uow := a.roleService()
	defer uow.Close()

	if err := svc.Create(role); err != nil {
		jsonMsg(c, "add role", err)
		return
	}
	jsonObj(c, role, nil)
}

func (a *RoleController) updateRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "update role", err)
		return
	}

	var query repository.UpdateRoleQuery
	if err := c.ShouldBind(&query); err != nil {
		jsonMsg(c, "update role", err)
		return
	}

	svc, uow := a.roleService()
	defer uow.Close()

	role, err := svc.GetByNumericID(id)
	if err != nil {
		jsonMsg(c, "update role", err)
		return
	}
	if role == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "role not found")
		return
	}

	updated, err := svc.Patch(role, query)
	if err != nil {
		jsonMsg(c, "update role", err)
		return
	}
	jsonObj(c, updated, nil)
}

func (a *RoleController) delRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, "delete role", err)
		return
	}

	svc, uow := a.roleService()
	defer uow.Close()

	role, err := svc.GetByNumericID(id)
	if err != nil {
		jsonMsg(c, "delete role", err)
		return
	}
	if role == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "role not found")
		return
	}
	if err := svc.Delete(role); err != nil {
		jsonMsg(c, "delete role", err)
		return
	}
	jsonMsg(c, "role deleted", nil)
}
