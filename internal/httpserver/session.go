package httpserver

import (
	"strings"

	"github.com/gin-gonic/gin"

	usersvc "records-api/internal/service/user"
)

func (h *handler) signup(c *gin.Context) {
	var req signupRequest
	taken := func() error {
		if strings.TrimSpace(req.UserName) == "" {
			return nil
		}
		return h.deps.Users.CheckAvailable(c.Request.Context(), req.UserName)
	}
	if err := bindWithParent(c, &req, taken); err != nil {
		h.fail(c, msgInvalidUserName, err)
		return
	}
	user, err := h.deps.Users.Signup(c.Request.Context(), usersvc.SignupInput{
		UserName:     req.UserName,
		Password:     req.Password,
		EmailAddress: req.EmailAddress,
	})
	if err != nil {
		h.fail(c, msgInvalidUserName, err)
		return
	}
	h.ok(c, user, "user signed up", "user_name", user.UserName)
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, msgInvalidCredentials, err)
		return
	}
	user, err := h.deps.Users.Login(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		h.fail(c, msgInvalidCredentials, err)
		return
	}
	h.ok(c, messageResponse{Message: "User logged in"}, "user logged in", "user_name", user.UserName)
}
