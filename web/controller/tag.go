package controller

import (
	"net/http"

	"blogtask/database"
	"blogtask/database/model"
	"blogtask/database/repository"
	"blogtask/web/service"

	"github.com/gin-gonic/gin"
)

// TagController handles HTTP requests related to tags.
type TagController struct {
	BaseController
}

// NewTagController creates a new TagController and sets up its routes.
func NewTagController(g *gin.RouterGroup) *TagController {
	a := &TagController{}
	a.initRouter(g)
	return a
}

func (a *TagController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/tag")

	g.GET("/list", a.getTags)
	g.GET("/get/:id", a.getTag)

	g.POST("/add", a.checkLogin, a.addTag)
	g.POST("/update/:id", a.checkLogin, a.updateTag)
	g.POST("/del/:id", a.checkLogin, a.delTag)
}

func (a *TagController) tagService() (*service.TagService, *repository.UnitOfWork) {
	uow := repository.NewUnitOfWork(database.GetDB())
	return service.NewTagService(uow), uow
}

func (a *TagController) getTags(c *gin.Context) {
	svc, uow := a.tagService()
	defer uow.Close()

	tags, err := svc.GetAll()
	if err != nil {
		jsonMsg(c, "obtain tags", err)
		return
	}
	jsonObj(c, tags, nil)
}

func (a *TagController) getTag(c *gin.Context) {
	svc, uow := a.tagService()
	defer uow.Close()

	tag, err := svc.GetByID(c.Param("id"))
	if err != nil {
		jsonMsg(c, "obtain tag", err)
		return
	}
	if tag == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "tag not found")
		return
	}
	jsonObj(c, tag, nil)
}

func (a *TagController) addTag(c *gin.Context) {
	tag := &model.Tag{}
	if err := c.ShouldBind(tag); err != nil {
		jsonMsg(c, "add tag", err)
		return
	}

	svc, uow := a.tagService()
	defer uow.Close()

	if err := svc.Create(tag); err != nil {
		jsonMsg(c, "add tag", err)
		return
	}
	jsonObj(c, tag, nil)
}

func (a *TagController) updateTag(c *gin.Context) {
	var query repository.UpdateTagQuery
	if err := c.ShouldBind(&query); err != nil {
		jsonMsg(c, "update tag", err)
		return
	}

	svc, uow := a.tagService()
	defer uow.Close()

	tag, err := svc.GetByID(c.Param("id"))
	if err != nil {
		jsonMsg(c, "update tag", err)
		return
	}
	if tag == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "tag not found")
		return
	}

	updated, err := svc.Patch(tag, query)
	if err != nil {
		jsonMsg(c, "update tag", err)
		return
	}
	jsonObj(c, updated, nil)
}

func (a *TagController) delTag(c *gin.Context) {
	svc, uow := a.tagService()
	defer uow.Close()

	tag, err := svc.GetByID(c.Param("id"))
	if err != nil {
		jsonMsg(c, "delete tag", err)
		return
	}
	if tag == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "tag not found")
		return
	}
	if err := svc.Delete(tag); err != nil {
		jsonMsg(c, "delete tag", err)
		return
	}
	jsonMsg(c, "tag deleted", nil)
}
