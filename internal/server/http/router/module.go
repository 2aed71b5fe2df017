package router

import "go.uber.org/fx"

// Module provides the configured *gin.Engine.
var Module = fx.Provide(Setup)
