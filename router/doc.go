// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the disease registry.

# Route Registration

NewRouter builds the full handler: a ServeMux with every endpoint, wrapped
in metrics collection and CORS:

	handler := router.NewRouter(pool, renderer)

Each application route is wrapped in middleware.WithLogging.

# Endpoints

Operational:

	GET /health  - Pings the database
	GET /metrics - Prometheus exposition
	GET /static/ - Embedded CSS

HTML pages (forms redirect back with ?message=):

	GET  /                             - Landing page
	GET  /users                        - Users and countries
	GET  /user/get_by_email?email=     - One user as JSON
	POST /user/post                    - Create user
	POST /user/update/{email}          - Update user, blank fields kept
	GET  /user/delete/{email}          - Delete user
	GET  /records                      - Records
	POST /record/post                  - Create record
	GET  /record/delete/{email}        - Delete record
	GET  /publicservants               - Public servants
	POST /publicservant/post           - Create public servant
	POST /publicservant/update/{email} - Update department
	GET  /publicservant/delete/{email} - Delete public servant
	GET  /publicservant/{email}        - One public servant as JSON
	GET  /diseases                     - Diseases, types and discoveries

JSON API, one resource per prefix with GET/POST on the collection and
GET/PUT/DELETE on the item:

	/api/user/{email}             (+ GET /api/user/{email}/role)
	/api/record/{email}           (+ GET /api/record/email/{email},
	                                 GET /api/record/disease/{code})
	/api/publicservant/{email}
	/api/doctor/{email}
	/api/country/{cname}
	/api/diseasetype/{id}
	/api/disease/{code}
	/api/discover/{cname}/{code}
	/api/specialize               (+ DELETE /api/specialize/{id}/{email})
*/
package router
