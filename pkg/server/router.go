package server

import (
	"net/http"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"go.uber.org/zap"

	"droscher.com/BusinessFinder/pkg/auth"
)

type Routes struct {
	Businesses *BusinessServer
	Geocode    *GeocodeServer
	Sessions   *SessionServer
	Health     *HealthChecker
	Auth       *auth.Manager
	// AdminPages is served behind the page gate under /admin. Nil answers 404.
	AdminPages http.Handler
	Logger     *zap.Logger
}

const compressMinBytes = 1024

func NewHandler(routes Routes) http.Handler {
	mux := http.NewServeMux()
	api := routes.Auth.APIGate

	mux.HandleFunc("GET /api/businesses", routes.Businesses.SearchBusinesses)
	mux.HandleFunc("POST /api/businesses", routes.Businesses.CreateBusiness)
	mux.HandleFunc("GET /api/map", routes.Businesses.RenderMap)
	mux.HandleFunc("GET /api/geocode", routes.Geocode.ReverseGeocode)

	mux.Handle("GET /api/admin/businesses", api(http.HandlerFunc(routes.Businesses.ListBusinesses)))
	mux.Handle("POST /api/admin/businesses", api(http.HandlerFunc(routes.Businesses.CreateBusiness)))
	mux.Handle("GET /api/admin/businesses/{id}", api(http.HandlerFunc(routes.Businesses.GetBusiness)))
	mux.Handle("PUT /api/admin/businesses/{id}", api(http.HandlerFunc(routes.Businesses.UpdateBusiness)))
	mux.Handle("DELETE /api/admin/businesses/{id}", api(http.HandlerFunc(routes.Businesses.DeleteBusiness)))

	mux.HandleFunc("POST /api/admin/session", routes.Sessions.SignIn)
	mux.HandleFunc("DELETE /api/admin/session", routes.Sessions.SignOut)

	pages := routes.AdminPages
	if pages == nil {
		pages = http.NotFoundHandler()
	}

	mux.Handle("/admin", routes.Auth.PageGate(pages))
	mux.Handle("/admin/", routes.Auth.PageGate(pages))

	compress := connect.WithCompressMinBytes(compressMinBytes)
	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)
	mux.Handle(grpchealth.NewHandler(routes.Health, compress))
	mux.Handle(grpcreflect.NewHandlerV1(reflector, compress))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector, compress))

	return AccessLog(routes.Logger, mux)
}
