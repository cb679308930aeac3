package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/exam-site-backend/internal/model"
	"github.com/stemsi/exam-site-backend/internal/response"
	"github.com/stemsi/exam-site-backend/internal/service"
	"github.com/stemsi/exam-site-backend/internal/validator"
)

// QuizHandler serves the category menu and question sets read from the spreadsheet.
type QuizHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(categoryService *service.CategoryService, questionService *service.QuestionService) *QuizHandler {
	return &QuizHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// ListCategories godoc
// GET /api/categories
// Lists published categories in settings-sheet order.
func (h *QuizHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListPublished(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrCategoriesFetch)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

// ListQuestions godoc
// GET /api/questions?category=<sheet name>
// Lists the questions on the named sheet.
func (h *QuizHandler) ListQuestions(c *gin.Context) {
	var q model.QuestionQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrCategoryRequired, fields)
		return
	}

	questions, err := h.questionService.Load(c.Request.Context(), q.Category)
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		response.Fail(c, http.StatusBadRequest, response.ErrCategoryRequired)
		return
	case err != nil:
		response.Fail(c, http.StatusInternalServerError, response.ErrQuestionsFetch)
		return
	}
	response.Success(c, http.StatusOK, questions)
}
