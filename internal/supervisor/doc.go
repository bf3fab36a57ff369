// Moodshelf - Emotion-Aware Content Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodshelf

/*
Package supervisor runs Moodshelf's long-lived services under suture v4.

	RootSupervisor ("moodshelf")
	├── CatalogSupervisor ("catalog-layer")
	│   └── CatalogMonitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff. Supervisor events are logged
through sutureslog, which main wires to the zerolog adapter in
internal/logging:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddCatalogService(services.NewCatalogMonitorService(store, engine, interval, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))
	err = tree.Serve(ctx)

Service wrappers live in the services subpackage.
*/
package supervisor
