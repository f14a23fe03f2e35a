package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/HuXin0817/fabric-claims/pkg/pprof"
	"github.com/HuXin0817/fabric-claims/serve/internal/config"
	"github.com/HuXin0817/fabric-claims/serve/internal/handler"
	"github.com/HuXin0817/fabric-claims/serve/internal/svc"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/service"
)

var (
	configFile = flag.String("f", "etc/serve.yaml", "the config file")
	serveAddr  = flag.String("h", "", "override the listen address")
)

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	if *serveAddr != "" {
		c.ListenOn = *serveAddr
	}

	logx.MustSetup(c.Log)
	defer logx.Close()

	ctx := svc.NewServiceContext(c)
	defer ctx.Close()

	if c.Mode == service.ProMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), handler.AccessLog())
	handler.RegisterHandlers(router, ctx)
	pprof.Register(router, c.Mode)

	server := &http.Server{
		Addr:    c.ListenOn,
		Handler: router,
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-stopCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logx.Errorf("shutdown: %v", err)
		}
	}()

	logx.Infof("Starting survey server at %s...", c.ListenOn)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logx.Errorf("serve: %v", err)
	}
}
