package controller

import (
	"net/http"

	"blogtask/database"
	"blogtask/database/model"
	"blogtask/database/repository"
	"blogtask/logger"
	"blogtask/web/service"

	"github.com/gin-gonic/gin"
)

// UserController handles HTTP requests related to user management.
type UserController struct {
	BaseController
}

// NewUserController creates a new UserController and sets up its routes.
func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/user")

	g.GET("/list", a.getUsers)
	g.GET("/get/:id", a.getUser)

	g.POST("/add", a.addUser)
	g.POST("/update/:id", a.checkLogin, a.updateUser)
	g.POST("/del/:id", a.checkLogin, a.checkAdmin, a.delUser)
}

func (a *UserController) userService() (*service.UserService, func() error) {
	uow := repository.NewUnitOfWork(database.GetDB())
	return service.NewUserService(uow), uow.Close
}

// getUsers retrieves the list of users.
func (a *UserController) getUsers(c *gin.Context) {
	svc, closeUow := a.userService()
	defer closeUow()

	users, err := svc.GetAll()
	if err != nil {
		jsonMsg(c, "obtain users", err)
		return
	}
	jsonObj(c, users, nil)
}

// getUser retrieves a specific user by id.
func (a *UserController) getUser(c *gin.Context) {
	svc, closeUow := a.userService()
	defer closeUow()

	user, err := svc.GetByID(c.Param("id"))
	if err != nil {
		jsonMsg(c, "obtain user", err)
		return
	}
	if user == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "user not found")
		return
	}
	jsonObj(c, user, nil)
}

// addUser registers a new user.
func (a *UserController) addUser(c *gin.Context) {
	user := &model.User{}
	if err := c.ShouldBind(user); err != nil {
		jsonMsg(c, "register user", err)
		return
	}

	svc, closeUow := a.userService()
	defer closeUow()

	if err := svc.Create(user); err != nil {
		jsonMsg(c, "register user", err)
		return
	}
	logger.Infof("user %s registered", user.Login)
	jsonObj(c, user, nil)
}

// updateUser applies a partial update to an existing user.
func (a *UserController) updateUser(c *gin.Context) {
	var query repository.UpdateUserQuery
	if err := c.ShouldBind(&query); err != nil {
		jsonMsg(c, "update user", err)
		return
	}

	svc, closeUow := a.userService()
	defer closeUow()

	user, err := svc.GetByID(c.Param("id"))
	if err != nil {
		jsonMsg(c, "update user", err)
		return
	}
	if user == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "user not found")
		return
	}

	updated, err := svc.Patch(user, query)
	if err != nil {
		jsonMsg(c, "update user", err)
		return
	}
	jsonObj(c, updated, nil)
}

// delUser removes a user. Administrator only.
func (a *UserController) delUser(c *gin.Context) {
	svc, closeUow := a.userService()
	defer closeUow()

	user, err := svc.GetByID(c.Param("id"))
	if err != nil {
		jsonMsg(c, "delete user", err)
		return
	}
	if user == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "user not found")
		return
	}
	if err := svc.Delete(user); err != nil {
		jsonMsg(c, "delete user", err)
		return
	}
	jsonMsg(c, "user deleted", nil)
}
