package controller

import (
	"net/http"

	"blogtask/database"
	"blogtask/database/model"
	"blogtask/database/repository"
	"blogtask/web/service"
	"blogtask/web/session"

	"github.com/gin-gonic/gin"
)

// CommentController handles HTTP requests related to comments. Adding a
// comment does not require a session; anonymous comments carry no user id.
type CommentController struct {
	BaseController
}

// NewCommentController creates a new CommentController and sets up its routes.
func NewCommentController(g *gin.RouterGroup) *CommentController {
	a := &CommentController{}
	a.initRouter(g)
	return a
}

func (a *CommentController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/comment")

	g.GET("/list", a.getComments)
	g.GET("/get/:id", a.getComment)

	g.POST("/add", a.addComment)
	g.POST("/update/:id", a.checkLogin, a.updateComment)
	g.POST("/del/:id", a.checkLogin, a.delComment)
}

func (a *CommentController) commentService() (*service.CommentService, *repository.UnitOfWork) {
	uow := repository.NewUnitOfWork(database.GetDB())
	return service.NewCommentService(uow), uow
}

func (a *CommentController) getComments(c *gin.Context) {
	svc, uow := a.commentService()
	defer uow.Close()

	comments, err := svc.GetAll()
	if err != nil {
		jsonMsg(c, "obtain comments", err)
		return
	}
	jsonObj(c, comments, nil)
}

func (a *CommentController) getComment(c *gin.Context) {
	svc, uow := a.commentService()
	defer uow.Close()

	comment, err := svc.GetByID(c.Param("id"))
	if err != nil {
		jsonMsg(c, "obtain comment", err)
		return
	}
	if comment == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "comment not found")
		return
	}
	jsonObj(c, comment, nil)
}

func (a *CommentController) addComment(c *gin.Context) {
	comment := &model.Comment{}
	if err := c.ShouldBind(comment); err != nil {
		jsonMsg(c, "add comment", err)
		return
	}

	// Logged-in authors are recorded; everyone else stays anonymous.
	if user := session.GetLoginUser(c); user != nil {
		comment.UserId = &user.Id
	} else {
		comment.UserId = nil
	}

	svc, uow := a.commentService()
	defer uow.Close()

	if err := svc.Create(comment); err != nil {
		jsonMsg(c, "add comment", err)
		return
	}
	jsonObj(c, comment, nil)
}

func (a *CommentController) updateComment(c *gin.Context) {
	var query repository.UpdateCommentQuery
	if err := c.ShouldBind(&query); err != nil {
		jsonMsg(c, "update comment", err)
		return
	}

	svc, uow := a.commentService()
	defer uow.Close()

	comment, err := svc.GetByID(c.Param("id"))
	if err != nil {
		jsonMsg(c, "update comment", err)
		return
	}
	if comment == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "comment not found")
		return
	}

	updated, err := svc.Patch(comment, query)
	if err != nil {
		jsonMsg(c, "update comment", err)
		return
	}
	jsonObj(c, updated, nil)
}

func (a *CommentController) delComment(c *gin.Context) {
	svc, uow := a.commentService()
	defer uow.Close()

	comment, err := svc.GetByID(c.Param("id"))
	if err != nil {
		jsonMsg(c, "delete comment", err)
		return
	}
	if comment == nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "comment not found")
		return
	}
	if err := svc.Delete(comment); err != nil {
		jsonMsg(c, "delete comment", err)
		return
	}
	jsonMsg(c, "comment deleted", nil)
}
