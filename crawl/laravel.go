package crawl

// BaseURL is the root of the Laravel documentation site.
const BaseURL = "https://laravel.com"

// sidebarPaths mirrors the sidebar of the Laravel 12.x manual. The
// discover command can rebuild this list from the live site; the static
// copy keeps `laradoc index` working offline from the site's structure.
var sidebarPaths = []string{
	"/docs/12.x/releases",
	"/docs/12.x/upgrade",
	"/docs/12.x/contributions",
	"/docs/12.x/installation",
	"/docs/12.x/configuration",
	"/docs/12.x/structure",
	"/docs/12.x/frontend",
	"/docs/12.x/starter-kits",
	"/docs/12.x/deployment",
	"/docs/12.x/lifecycle",
	"/docs/12.x/container",
	"/docs/12.x/providers",
	"/docs/12.x/facades",
	"/docs/12.x/routing",
	"/docs/12.x/middleware",
	"/docs/12.x/csrf",
	"/docs/12.x/controllers",
	"/docs/12.x/requests",
	"/docs/12.x/responses",
	"/docs/12.x/views",
	"/docs/12.x/blade",
	"/docs/12.x/vite",
	"/docs/12.x/urls",
	"/docs/12.x/session",
	"/docs/12.x/validation",
	"/docs/12.x/errors",
	"/docs/12.x/logging",
	"/docs/12.x/artisan",
	"/docs/12.x/broadcasting",
	"/docs/12.x/cache",
	"/docs/12.x/collections",
	"/docs/12.x/concurrency",
	"/docs/12.x/context",
	"/docs/12.x/contracts",
	"/docs/12.x/events",
	"/docs/12.x/filesystem",
	"/docs/12.x/helpers",
	"/docs/12.x/http-client",
	"/docs/12.x/localization",
	"/docs/12.x/mail",
	"/docs/12.x/notifications",
	"/docs/12.x/packages",
	"/docs/12.x/processes",
	"/docs/12.x/queues",
	"/docs/12.x/rate-limiting",
	"/docs/12.x/strings",
	"/docs/12.x/scheduling",
	"/docs/12.x/authentication",
	"/docs/12.x/authorization",
	"/docs/12.x/verification",
	"/docs/12.x/encryption",
	"/docs/12.x/hashing",
	"/docs/12.x/passwords",
	"/docs/12.x/database",
	"/docs/12.x/queries",
	"/docs/12.x/pagination",
	"/docs/12.x/migrations",
	"/docs/12.x/seeding",
	"/docs/12.x/redis",
	"/docs/12.x/mongodb",
	"/docs/12.x/eloquent",
	"/docs/12.x/eloquent-relationships",
	"/docs/12.x/eloquent-collections",
	"/docs/12.x/eloquent-mutators",
	"/docs/12.x/eloquent-resources",
	"/docs/12.x/eloquent-serialization",
	"/docs/12.x/eloquent-factories",
	"/docs/12.x/testing",
	"/docs/12.x/http-tests",
	"/docs/12.x/console-tests",
	"/docs/12.x/dusk",
	"/docs/12.x/database-testing",
	"/docs/12.x/mocking",
	"/docs/12.x/billing",
	"/docs/12.x/cashier-paddle",
	"/docs/12.x/envoy",
	"/docs/12.x/fortify",
	"/docs/12.x/folio",
	"/docs/12.x/homestead",
	"/docs/12.x/horizon",
	"/docs/12.x/mix",
	"/docs/12.x/octane",
	"/docs/12.x/passport",
	"/docs/12.x/pennant",
	"/docs/12.x/pint",
	"/docs/12.x/precognition",
	"/docs/12.x/prompts",
	"/docs/12.x/pulse",
	"/docs/12.x/reverb",
	"/docs/12.x/sail",
	"/docs/12.x/sanctum",
	"/docs/12.x/scout",
	"/docs/12.x/socialite",
	"/docs/12.x/telescope",
	"/docs/12.x/valet",
}

// DefaultURLs returns the full fetch plan for the Laravel 12.x manual.
func DefaultURLs() []string {
	urls := make([]string, len(sidebarPaths))
	for i, path := range sidebarPaths {
		urls[i] = BaseURL + path
	}
	return urls
}
