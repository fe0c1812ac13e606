// Package controller provides the HTTP request handlers for the blog panel
// REST API: content management, user administration and authentication.
package controller

import (
	"net/http"

	"blogtask/database"
	"blogtask/database/repository"
	"blogtask/web/service"
	"blogtask/web/session"

	"github.com/gin-gonic/gin"
)

const adminRoleName = "Administrator"

// BaseController provides common functionality for all controllers, including
// authentication and role checks.
type BaseController struct{}

// checkLogin is a middleware that verifies user authentication.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		pureJsonMsg(c, http.StatusUnauthorized, false, "login required")
		c.Abort()
		return
	}
	c.Next()
}

// checkAdmin is a middleware that verifies the logged-in user carries the
// administrator role.
func (a *BaseController) checkAdmin(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user == nil || user.RoleId == nil {
		pureJsonMsg(c, http.StatusForbidden, false, "administrator role required")
		c.Abort()
		return
	}

	uow := repository.NewUnitOfWork(database.GetDB())
	defer uow.Close()

	role, err := service.NewRoleService(uow).GetByNumericID(*user.RoleId)
	if err != nil || role == nil || role.Name != adminRoleName {
		pureJsonMsg(c, http.StatusForbidden, false, "administrator role required")
		c.Abort()
		return
	}
	c.Next()
}
