package controller

import (
	"github.com/gin-gonic/gin"
)

// APIController mounts the resource controllers under the /api group.
type APIController struct {
	BaseController

	user    *UserController
	article *ArticleController
	tag     *TagController
	comment *CommentController
	role    *RoleController
	server  *ServerController
}

// NewAPIController creates a new APIController and registers all resource routes.
func NewAPIController(g *gin.RouterGroup) *APIController {
	a := &APIController{}
	a.initRouter(g)
	return a
}

func (a *APIController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/api")

	a.user = NewUserController(g)
	a.article = NewArticleController(g)
	a.tag = NewTagController(g)
	a.comment = NewCommentController(g)
	a.role = NewRoleController(g)
	a.server = NewServerController(g)
}
