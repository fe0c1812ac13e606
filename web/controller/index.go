package controller

import (
	"net/http"

	"blogtask/database"
	"blogtask/database/repository"
	"blogtask/logger"
	"blogtask/web/service"
	"blogtask/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Login    string `json:"login" form:"login"`
	Password string `json:"password" form:"password"`
}

// IndexController handles login and logout.
type IndexController struct {
	BaseController

	settingService service.SettingService
}

// NewIndexController creates a new IndexController and initializes its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.POST("/login", a.login)
	g.GET("/logout", a.logout)
}

// login handles user authentication and session creation.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid login form")
		return
	}
	if form.Login == "" {
		pureJsonMsg(c, http.StatusOK, false, "login can not be empty")
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, "password can not be empty")
		return
	}

	uow := repository.NewUnitOfWork(database.GetDB())
	defer uow.Close()

	user := service.NewUserService(uow).CheckUser(form.Login, form.Password)
	if user == nil {
		logger.Warningf("wrong login attempt for %q from %s", form.Login, getRemoteIp(c))
		pureJsonMsg(c, http.StatusOK, false, "wrong login or password")
		return
	}

	sessionMaxAge, err := a.settingService.GetSessionMaxAge()
	if err != nil {
		logger.Warning("unable to get session max age:", err)
	}
	if sessionMaxAge > 0 {
		if err := session.SetMaxAge(c, sessionMaxAge*60); err != nil {
			logger.Warning("unable to set session max age:", err)
		}
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}

	logger.Infof("%s logged in successfully, IP: %s", form.Login, getRemoteIp(c))
	jsonMsg(c, "login successful", nil)
}

// logout clears the session.
func (a *IndexController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		logger.Infof("%s logged out successfully", user.Login)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	jsonMsg(c, "logout successful", nil)
}
