package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/celestine-lau/enactus-app/internal/config"
	"github.com/celestine-lau/enactus-app/internal/database"
	"github.com/celestine-lau/enactus-app/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed structures matching the YAML files under scripts/data
type UserData struct {
	Email       string `yaml:"email"`
	DisplayName string `yaml:"display_name"`
	Privilege   int    `yaml:"privilege"`
	TeamName    string `yaml:"team_name,omitempty"`
}

type TaskData struct {
	Name        string `yaml:"name"`
	MaxPoints   int    `yaml:"max_points"`
	Type        int    `yaml:"type"`
	Category    int    `yaml:"category"`
	Description string `yaml:"description,omitempty"`
	Image       string `yaml:"image,omitempty"`
	URL         string `yaml:"url,omitempty"`
}

type TeamData struct {
	Name        string `yaml:"name"`
	Charter     string `yaml:"charter,omitempty"`
	LeaderEmail string `yaml:"leader_email,omitempty"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TasksFile struct {
	Tasks []TaskData `yaml:"tasks"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry waits for Postgres readiness, useful when the database
// container is still starting.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var teamsFile TeamsFile
	if err := readYAML(filepath.Join(dataDir, "teams.yaml"), &teamsFile); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	var usersFile UsersFile
	if err := readYAML(filepath.Join(dataDir, "users.yaml"), &usersFile); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	var tasksFile TasksFile
	if err := readYAML(filepath.Join(dataDir, "tasks.yaml"), &tasksFile); err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	// Teams first so users can reference them by name
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teamsFile.Teams {
		team, created, err := upsertTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teamsFile.Teams))

	userCreated := 0
	for _, userData := range usersFile.Users {
		_, created, err := upsertUser(db, userData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(usersFile.Users))

	// Leaders can only be resolved once their user rows exist
	if err := assignLeaders(db, teamsFile.Teams, teamMap); err != nil {
		return err
	}

	taskCreated := 0
	for _, taskData := range tasksFile.Tasks {
		_, created, err := upsertTask(db, taskData)
		if err != nil {
			return fmt.Errorf("failed to create task %s: %w", taskData.Name, err)
		}
		if created {
			taskCreated++
		}
	}
	log.Printf("Tasks: %d created, %d total", taskCreated, len(tasksFile.Tasks))

	return nil
}

func readYAML(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Skipping %s: file not found", path)
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, target)
}

func upsertTeam(db *gorm.DB, data TeamData) (*models.Team, bool, error) {
	var existing models.Team
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	team := &models.Team{
		Name:    data.Name,
		Charter: data.Charter,
	}
	if err := db.Create(team).Error; err != nil {
		return nil, false, err
	}
	return team, true, nil
}

func upsertUser(db *gorm.DB, data UserData, teamMap map[string]*models.Team) (*models.User, bool, error) {
	var existing models.User
	err := db.First(&existing, "email = ?", data.Email).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user := &models.User{
		Email:       data.Email,
		DisplayName: data.DisplayName,
		Privilege:   data.Privilege,
	}
	if data.TeamName != "" {
		team, ok := teamMap[data.TeamName]
		if !ok {
			return nil, false, fmt.Errorf("unknown team %q", data.TeamName)
		}
		user.TeamID = &team.ID
	}
	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func upsertTask(db *gorm.DB, data TaskData) (*models.Task, bool, error) {
	var existing models.Task
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	task := &models.Task{
		Name:        data.Name,
		MaxPoints:   data.MaxPoints,
		Type:        models.TaskType(data.Type),
		Category:    models.TaskCategory(data.Category),
		Description: data.Description,
		Image:       data.Image,
		URL:         data.URL,
	}
	if err := db.Create(task).Error; err != nil {
		return nil, false, err
	}
	return task, true, nil
}

func assignLeaders(db *gorm.DB, teams []TeamData, teamMap map[string]*models.Team) error {
	for _, teamData := range teams {
		if teamData.LeaderEmail == "" {
			continue
		}
		team := teamMap[teamData.Name]
		if team == nil || team.LeaderID != nil {
			continue
		}

		var leader models.User
		if err := db.First(&leader, "email = ?", teamData.LeaderEmail).Error; err != nil {
			return fmt.Errorf("leader %s for team %s: %w", teamData.LeaderEmail, teamData.Name, err)
		}
		if leader.TeamID == nil || *leader.TeamID != team.ID {
			return fmt.Errorf("leader %s is not a member of team %s", teamData.LeaderEmail, teamData.Name)
		}
		if err := db.Model(team).Update("leader_id", leader.ID).Error; err != nil {
			return fmt.Errorf("failed to set leader for team %s: %w", teamData.Name, err)
		}
	}
	return nil
}
