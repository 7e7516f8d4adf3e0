package di

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	announcementadapters "student_portal/internal/feature/announcement/adapters"
	announcemententity "student_portal/internal/feature/announcement/domain/entity"
	announcementhandler "student_portal/internal/feature/announcement/transport/handler"
	announcementusecase "student_portal/internal/feature/announcement/usecase"
	authadapters "student_portal/internal/feature/auth/adapters"
	authentity "student_portal/internal/feature/auth/domain/entity"
	authhandler "student_portal/internal/feature/auth/transport/handler"
	"student_portal/internal/feature/auth/transport/middleware"
	authusecase "student_portal/internal/feature/auth/usecase"
	projectadapters "student_portal/internal/feature/project/adapters"
	projectentity "student_portal/internal/feature/project/domain/entity"
	projecthandler "student_portal/internal/feature/project/transport/handler"
	projectusecase "student_portal/internal/feature/project/usecase"
	studentadapters "student_portal/internal/feature/student/adapters"
	studenthandler "student_portal/internal/feature/student/transport/handler"
	studentusecase "student_portal/internal/feature/student/usecase"
	wishlistadapters "student_portal/internal/feature/wishlist/adapters"
	wishlistentity "student_portal/internal/feature/wishlist/domain/entity"
	wishlisthandler "student_portal/internal/feature/wishlist/transport/handler"
	wishlistusecase "student_portal/internal/feature/wishlist/usecase"
	"student_portal/internal/platform/cache"
	"student_portal/internal/platform/db"
	healthhandler "student_portal/internal/platform/http/handler"
)

// Models lists every table of the portal in dependency order.
func Models() []any {
	return []any{
		&authentity.Student{},
		&authentity.Admin{},
		&authadapters.TokenModel{},
		&announcemententity.Announcement{},
		&projectentity.Project{},
		&wishlistentity.WishlistItem{},
	}
}

// Options tunes the container.
type Options struct {
	TokenTTL       time.Duration
	CacheTTL       time.Duration
	CacheNamespace string
}

// Container holds the HTTP-facing parts of the application graph.
type Container struct {
	Auth          *authhandler.AuthHandler
	Announcements *announcementhandler.AnnouncementHandler
	Projects      *projecthandler.ProjectHandler
	Wishlist      *wishlisthandler.WishlistHandler
	Students      *studenthandler.StudentHandler
	HealthChecks  []healthhandler.Check

	// Authenticator validates bearer tokens for the auth middleware.
	Authenticator middleware.Authenticator
	// Tokens purges expired tokens.
	Tokens TokenPurger
}

// TokenPurger removes expired tokens from the token store.
type TokenPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// NewContainer wires every feature on top of db and an optional Redis client.
func NewContainer(gdb *gorm.DB, rdb *redis.Client, opts Options) *Container {
	// Repository
	students := authadapters.NewStudentGorm(gdb)
	admins := authadapters.NewAdminGorm(gdb)
	tokens := NewTokenRepository(rdb, gdb)
	announcementRepo := announcementadapters.NewAnnouncementGorm(gdb)
	projectRepo := projectadapters.NewProjectGorm(gdb)
	wishlistRepo := wishlistadapters.NewWishlistGorm(gdb)
	directoryRepo := studentadapters.NewStudentGorm(gdb)

	// Wrap reads with the Redis cache
	cachedAnnouncements := cache.NewCachingAnnouncementRepository(rdb, opts.CacheTTL, announcementRepo, opts.CacheNamespace)

	// Usecase
	authUC := authusecase.NewAuthUsecase(students, admins, tokens, opts.TokenTTL)
	announcementUC := announcementusecase.NewAnnouncementUsecase(cachedAnnouncements)
	projectUC := projectusecase.NewProjectUsecase(projectRepo)
	wishlistUC := wishlistusecase.NewWishlistUsecase(
		wishlistRepo,
		wishlistadapters.NewProjectChecker(gdb),
		wishlistadapters.NewStudentChecker(gdb),
	)
	directoryUC := studentusecase.NewDirectoryUsecase(directoryRepo, wishlistRepo, studentadapters.NewWishlistWorkbook())

	return &Container{
		Auth:          authhandler.NewAuthHandler(authUC),
		Announcements: announcementhandler.NewAnnouncementHandler(announcementUC),
		Projects:      projecthandler.NewProjectHandler(projectUC),
		Wishlist:      wishlisthandler.NewWishlistHandler(wishlistUC),
		Students:      studenthandler.NewStudentHandler(directoryUC),
		HealthChecks:  HealthChecks(gdb, rdb),
		Authenticator: authUC,
		Tokens:        authUC,
	}
}

// HealthChecks returns the dependency probes for /healthz. The database is
// required; Redis only degrades the service.
func HealthChecks(gdb *gorm.DB, rdb *redis.Client) []healthhandler.Check {
	checks := []healthhandler.Check{{
		Name:     "database",
		Required: true,
		Ping:     func(context.Context) error { return db.Ping(gdb) },
	}}
	if rdb != nil {
		checks = append(checks, healthhandler.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}
	return checks
}
