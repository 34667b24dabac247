package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franpopo/EasyStock/internal/database"

	"github.com/gin-gonic/gin"
)

type BranchRequest struct {
	Name string `json:"name" binding:"required"`
}

// --- GET: List store branches ---
func GetBranches(c *gin.Context) {
	branches, err := database.ListBranches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch branches"})
		return
	}
	c.JSON(http.StatusOK, branches)
}

// --- POST: Register a new branch ---
func AddBranch(c *gin.Context) {
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	branch, err := database.AddBranch(req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create branch"})
		return
	}
	c.JSON(http.StatusCreated, branch)
}

// --- DELETE: Remove a branch and its product catalog ---
func DeleteBranch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Branch ID"})
		return
	}

	switch err := database.DeleteBranch(uint(id)); {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete branch"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Branch and its products deleted"})
	}
}
