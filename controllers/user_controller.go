package controllers

import (
	"net/http"
	"strconv"

	"go-asset-management/config"
	"go-asset-management/models"
	"go-asset-management/service"
	"go-asset-management/utils"

	"github.com/gin-gonic/gin"
)

type userInput struct {
	EmpID            string `json:"emp_id" binding:"required"`
	EmpCode          string `json:"emp_code" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Role             string `json:"role"`
	Department       string `json:"department"`
	Division         string `json:"division"`
	JoinDate         string `json:"join_date"`
	Status           string `json:"status"`
	Location         string `json:"location"`
	PhoneNumber      string `json:"phone_number"`
	Designation      string `json:"designation"`
	ReportingManager string `json:"reporting_manager"`
}

// userRow carries join_date in the YYYY-MM-DD wire format.
type userRow struct {
	ID               uint          `json:"id"`
	EmpID            string        `json:"emp_id"`
	EmpCode          string        `json:"emp_code"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	Role             string        `json:"role"`
	Department       string        `json:"department"`
	Division         string        `json:"division"`
	JoinDate         *service.Date `json:"join_date"`
	Status           string        `json:"status"`
	Location         string        `json:"location"`
	PhoneNumber      string        `json:"phone_number"`
	Designation      string        `json:"designation"`
	ReportingManager string        `json:"reporting_manager"`
}

func toUserRow(u models.User) userRow {
	return userRow{
		ID:               u.ID,
		EmpID:            u.EmpID,
		EmpCode:          u.EmpCode,
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role,
		Department:       u.Department,
		Division:         u.Division,
		JoinDate:         service.DateOf(u.JoinDate),
		Status:           u.Status,
		Location:         u.Location,
		PhoneNumber:      u.PhoneNumber,
		Designation:      u.Designation,
		ReportingManager: u.ReportingManager,
	}
}

func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("id").Find(&users).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to retrieve users")
		return
	}

	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, toUserRow(u))
	}
	c.JSON(http.StatusOK, rows)
}

func GetUserByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "user not found")
		return
	}

	c.JSON(http.StatusOK, toUserRow(user))
}

func CreateUser(c *gin.Context) {
	var in userInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var exist models.User
	if err := config.DB.Where("emp_id = ? OR emp_code = ? OR email = ?",
		in.EmpID, in.EmpCode, in.Email).First(&exist).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "emp_id, emp_code or email already in use")
		return
	}

	joinDate, err := parseDateField(in.JoinDate, "join_date")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	role := in.Role
	if role == "" {
		role = "Employee"
	}

	user := models.User{
		EmpID:            in.EmpID,
		EmpCode:          in.EmpCode,
		Name:             in.Name,
		Email:            in.Email,
		Role:             role,
		Department:       in.Department,
		Division:         in.Division,
		JoinDate:         joinDate,
		Status:           in.Status,
		Location:         in.Location,
		PhoneNumber:      in.PhoneNumber,
		Designation:      in.Designation,
		ReportingManager: in.ReportingManager,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to add user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User added successfully", "id": user.ID})
}

func UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "user not found")
		return
	}

	var in userInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	joinDate, err := parseDateField(in.JoinDate, "join_date")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user.EmpID = in.EmpID
	user.EmpCode = in.EmpCode
	user.Name = in.Name
	user.Email = in.Email
	if in.Role != "" {
		user.Role = in.Role
	}
	user.Department = in.Department
	user.Division = in.Division
	user.JoinDate = joinDate
	user.Status = in.Status
	user.Location = in.Location
	user.PhoneNumber = in.PhoneNumber
	user.Designation = in.Designation
	user.ReportingManager = in.ReportingManager

	if err := config.DB.Save(&user).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}

// DeleteUser removes an employee; their assets are unassigned by the
// ON DELETE SET NULL constraint, not deleted.
func DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "user not found")
		return
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
