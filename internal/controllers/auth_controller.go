package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"busmate/internal/config"
	"busmate/internal/middleware"
	"busmate/internal/models"
	"busmate/internal/otp"
	"busmate/internal/store"
)

// resetCodes holds the outstanding password reset codes for this process.
var resetCodes = otp.NewIssuer()

type passengerSignupInput struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	FullName         string `json:"full_name" binding:"required"`
	Phone            string `json:"phone_number"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
	BloodType        string `json:"blood_type"`
}

type operatorSignupInput struct {
	Email               string `json:"email" binding:"required,email"`
	Password            string `json:"password" binding:"required,min=6"`
	FullName            string `json:"full_name" binding:"required"`
	Phone               string `json:"phone_number"`
	DateOfBirth         string `json:"date_of_birth"`
	Gender              string `json:"gender"`
	Address             string `json:"address"`
	LicenseNumber       string `json:"license_number" binding:"required"`
	VehicleRegistration string `json:"vehicle_registration" binding:"required"`
	RouteNumber         string `json:"route_number"`
	YearsExperience     int    `json:"years_experience" binding:"min=0"`
	VehicleType         string `json:"vehicle_type"`
	OperatingCompany    string `json:"operating_company"`
	EmergencyContact    string `json:"emergency_contact"`
	EmergencyPhone      string `json:"emergency_phone"`
}

// SignupPassenger registers a passenger account together with its profile.
func SignupPassenger(c *gin.Context) {
	var input passengerSignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := models.Passenger{
		FullName:         input.FullName,
		Phone:            input.Phone,
		DateOfBirth:      input.DateOfBirth,
		Gender:           input.Gender,
		Address:          input.Address,
		EmergencyContact: input.EmergencyContact,
		EmergencyPhone:   input.EmergencyPhone,
		BloodType:        input.BloodType,
	}

	account, err := store.RegisterPassenger(config.DB, input.Email, input.Password, profile)
	if err != nil {
		respondRegistrationError(c, err)
		return
	}

	issueTokenResponse(c, http.StatusCreated, account)
}

// SignupOperator registers a bus operator account together with its profile.
func SignupOperator(c *gin.Context) {
	var input operatorSignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := models.BusOperator{
		FullName:            input.FullName,
		Phone:               input.Phone,
		DateOfBirth:         input.DateOfBirth,
		Gender:              input.Gender,
		Address:             input.Address,
		LicenseNumber:       input.LicenseNumber,
		VehicleRegistration: input.VehicleRegistration,
		RouteNumber:         input.RouteNumber,
		YearsExperience:     input.YearsExperience,
		VehicleType:         input.VehicleType,
		OperatingCompany:    input.OperatingCompany,
		EmergencyContact:    input.EmergencyContact,
		EmergencyPhone:      input.EmergencyPhone,
	}

	account, err := store.RegisterOperator(config.DB, input.Email, input.Password, profile)
	if err != nil {
		respondRegistrationError(c, err)
		return
	}

	issueTokenResponse(c, http.StatusCreated, account)
}

// LoginUser authenticates an account and mints a JWT.
func LoginUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := store.NewAccountRepository(config.DB).Authenticate(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Wrong password and unknown email deliberately look the same.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	issueTokenResponse(c, http.StatusOK, account)
}

// ForgotPassword issues a reset code for an existing account. The code is
// delivered out of band; here it only reaches the log.
func ForgotPassword(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := store.NormalizeEmail(body.Email)
	exists, err := store.NewAccountRepository(config.DB).EmailExists(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "no account registered with that email"})
		return
	}

	// The code itself stays out of the log; only its issuance is recorded.
	if _, err := resetCodes.Generate(email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate verification code"})
		return
	}
	logrus.WithField("email", email).Debug("reset code issued")

	c.JSON(http.StatusOK, gin.H{"message": "verification code sent"})
}

// ResetPassword verifies a reset code and sets the new password. The
// update itself never re-checks the old password; the code is the proof
// of identity.
func ResetPassword(c *gin.Context) {
	var body struct {
		Email       string `json:"email" binding:"required,email"`
		Code        string `json:"code" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := store.NormalizeEmail(body.Email)
	if err := resetCodes.Verify(email, body.Code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := store.NewAccountRepository(config.DB).UpdatePassword(email, body.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update password: " + err.Error()})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{"error": "no account registered with that email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func respondRegistrationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
	case errors.Is(err, store.ErrInvalidRole), errors.Is(err, store.ErrConstraint):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register: " + err.Error()})
	}
}

func issueTokenResponse(c *gin.Context, status int, account *models.Account) {
	token, err := middleware.GenerateToken(account.ID, account.UserType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(status, gin.H{
		"token": token,
		"user":  prepareAccountResponse(account),
	})
}

func prepareAccountResponse(account *models.Account) gin.H {
	return gin.H{
		"user_id":     account.ID,
		"email":       account.Email,
		"user_type":   account.UserType,
		"created_at":  account.CreatedAt,
		"is_verified": account.IsVerified,
	}
}
