package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/dto"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/model"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/repository"
	"github.com/rimamd894-svg/ai-quiz-pro/internal/service"
	"github.com/rs/zerolog/log"
)

const currentUserKey = "currentUser"

// AuthRequired verifies the bearer token and loads the account it names.
// The request is rejected with 401 when the token is missing, invalid,
// expired, or references a user that no longer exists.
func AuthRequired(tokens service.TokenService, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: model.ErrInvalidToken.Error()})
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			log.Warn().Err(err).Str("userID", userID).Msg("AuthRequired: token user not found")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: model.ErrUserNotFound.Error()})
			return
		}

		ctx.Set(currentUserKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the account loaded by AuthRequired, or nil when the
// route was not guarded.
func CurrentUser(ctx *gin.Context) *model.User {
	value, exists := ctx.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}
