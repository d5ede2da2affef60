package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/hofix-app/hofix-api/schema"
	"github.com/hofix-app/hofix-api/store"
)

// accountRegister is the API for registering a new account. A request with
// the provider role also creates the marketplace provider profile, which
// starts unverified.
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")

	var params struct {
		Name      string   `json:"name" binding:"required"`
		Email     string   `json:"email" binding:"required,email"`
		Password  string   `json:"password" binding:"required,min=6"`
		Phone     string   `json:"phone"`
		Role      string   `json:"role"`
		Latitude  float64  `json:"latitude"`
		Longitude float64  `json:"longitude"`
		Address   string   `json:"address"`
		Skills    []string `json:"skills"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	role := params.Role
	switch role {
	case "":
		role = schema.RoleUser
	case schema.RoleUser, schema.RoleProvider:
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if shouldInterupt(err, c) {
		return
	}

	user, err := s.mongoStore.CreateUser(schema.User{
		Name:         params.Name,
		Email:        params.Email,
		Phone:        params.Phone,
		Role:         role,
		PasswordHash: string(hash),
		Latitude:     params.Latitude,
		Longitude:    params.Longitude,
		Address:      params.Address,
	})
	if err == store.ErrEmailTaken {
		abortWithEncoding(c, http.StatusForbidden, errorEmailTaken)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	result := gin.H{"result": user}

	if role == schema.RoleProvider {
		provider, err := s.mongoStore.CreateProvider(schema.Provider{
			UserID: user.ID,
			Skills: params.Skills,
		})
		if shouldInterupt(err, c) {
			return
		}
		result["provider"] = provider
	}

	c.JSON(http.StatusOK, result)
}

// accountDetail is the API to query the current account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	result := gin.H{"result": account}

	if account.Role == schema.RoleProvider {
		provider, err := s.mongoStore.GetProviderByUserID(account.ID)
		if err == nil {
			result["provider"] = provider
		} else if err != store.ErrProviderNotFound {
			if shouldInterupt(err, c) {
				return
			}
		}
	}

	c.JSON(http.StatusOK, result)
}
