package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/projectflow/internal/domain/entity"
	"github.com/tu-usuario/projectflow/internal/infrastructure/postgres"
	"github.com/tu-usuario/projectflow/pkg/config"
	"github.com/tu-usuario/projectflow/pkg/logger"
)

// Carga datos mínimos de arranque: un admin, un project manager con un
// proyecto demo y un team_member con habilidades. Idempotente por email:
// si el admin ya existe no hace nada.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	skillRepo := postgres.NewUserSkillRepository(pool)

	existing, err := userRepo.GetByEmail("admin@projectflow.local")
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if existing != nil {
		log.Info().Msg("datos de arranque ya presentes, nada que hacer")
		return
	}

	now := time.Now()

	admin := &entity.User{
		ID:           uuid.NewString(),
		FirstName:    "Admin",
		LastName:     "ProjectFlow",
		Email:        "admin@projectflow.local",
		PasswordHash: mustHash("admin123"),
		Role:         entity.RoleAdmin,
		HourlyRate:   decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	manager := &entity.User{
		ID:           uuid.NewString(),
		FirstName:    "Laura",
		LastName:     "Gómez",
		Email:        "laura@projectflow.local",
		PasswordHash: mustHash("manager123"),
		Role:         entity.RoleProjectManager,
		HourlyRate:   decimal.NewFromInt(60),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	dev := &entity.User{
		ID:           uuid.NewString(),
		FirstName:    "Carlos",
		LastName:     "Rivas",
		Email:        "carlos@projectflow.local",
		PasswordHash: mustHash("dev123456"),
		Role:         entity.RoleTeamMember,
		HourlyRate:   decimal.NewFromInt(45),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	for _, u := range []*entity.User{admin, manager, dev} {
		if err := userRepo.Create(u); err != nil {
			log.Fatal().Err(err).Str("email", u.Email).Msg("crear usuario")
		}
	}

	project := &entity.Project{
		ID:          uuid.NewString(),
		Name:        "Proyecto Demo",
		Description: "Proyecto de ejemplo para explorar la API",
		ManagerID:   manager.ID,
		Priority:    "medium",
		Budget:      decimal.NewFromInt(25000),
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := projectRepo.Create(project); err != nil {
		log.Fatal().Err(err).Msg("crear proyecto demo")
	}

	for _, name := range []string{"Go", "Postgresql"} {
		skill := &entity.UserSkill{
			ID:               uuid.NewString(),
			UserID:           dev.ID,
			SkillName:        name,
			ProficiencyLevel: "advanced",
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := skillRepo.Create(skill); err != nil {
			log.Fatal().Err(err).Str("skill", name).Msg("crear habilidad")
		}
	}

	log.Info().
		Str("admin", admin.Email).
		Str("project", project.Name).
		Msg("datos de arranque cargados")
}

func mustHash(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
