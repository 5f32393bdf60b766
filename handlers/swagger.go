package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the dashboard API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(r gin.IRoutes) {
	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})

	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Klowq admin dashboard API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "klowq-admin-dashboard", "version": "v1.0.0" },
  "components": {
    "securitySchemes": {
      "cookie": { "type": "apiKey", "in": "cookie", "name": "dashboard_session" },
      "bearer": { "type": "http", "scheme": "bearer", "bearerFormat": "JWT" }
    },
    "schemas": {
      "Error": { "type": "object", "properties": { "error": { "type": "string" } } },
      "Blog": { "type": "object", "properties": {
        "id": {"type":"string"}, "title": {"type":"string"}, "content": {"type":"string"}, "author": {"type":"string"},
        "bannerImage": {"type":"string"}, "featured": {"type":"boolean"}, "featuredDoctorId": {"type":"string"},
        "preferences": {"type":"array","items":{"type":"string"}},
        "createdAt": {"type":"string","format":"date-time"}, "updatedAt": {"type":"string","format":"date-time"} } },
      "Preference": { "type": "object", "properties": {
        "id": {"type":"string"}, "name": {"type":"string"},
        "createdAt": {"type":"string","format":"date-time"}, "updatedAt": {"type":"string","format":"date-time"} } },
      "Doctor": { "type": "object", "properties": {
        "id": {"type":"string"}, "name": {"type":"string"}, "specialization": {"type":"string"}, "title": {"type":"string"},
        "blogCount": {"type":"integer"}, "status": {"type":"string","enum":["Verified","Pending","In Review","Rejected","Suspended"]} } }
    }
  },
  "security": [ { "cookie": [] }, { "bearer": [] } ],
  "paths": {
    "/api/auth/login": {
      "post": { "summary": "Sign in with the admin credential", "security": [],
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "tokens returned, cookies set" }, "401": { "description": "bad credentials" }, "429": { "description": "rate limited" } } }
    },
    "/api/auth/refresh": {
      "post": { "summary": "Refresh access token", "security": [], "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refreshToken":{"type":"string"}}}}}}, "responses": { "200": { "description": "new access token" }, "401": { "description": "invalid refresh" } } }
    },
    "/api/auth/logout": {
      "post": { "summary": "Sign out and revoke the session", "security": [], "responses": { "200": { "description": "logged out" } } }
    },
    "/api/blogs": {
      "get": { "summary": "List blogs", "responses": { "200": { "description": "blogs in creation order" } } },
      "post": { "summary": "Create a blog", "responses": { "201": { "description": "created" }, "400": { "description": "title, content and author are required" } } }
    },
    "/api/blogs/{id}": {
      "get": { "summary": "Get a blog", "responses": { "200": { "description": "blog" }, "404": { "description": "Blog not found" } } },
      "put": { "summary": "Partially update a blog", "responses": { "200": { "description": "updated" }, "404": { "description": "Blog not found" } } },
      "delete": { "summary": "Delete a blog", "responses": { "200": { "description": "Blog deleted successfully" }, "404": { "description": "Blog not found" } } }
    },
    "/api/preferences": {
      "get": { "summary": "List preferences (seeded on first use)", "responses": { "200": { "description": "preferences" } } },
      "post": { "summary": "Create a preference", "responses": { "201": { "description": "created" }, "400": { "description": "empty or duplicate name" } } }
    },
    "/api/preferences/{id}": {
      "get": { "summary": "Get a preference", "responses": { "200": { "description": "preference" }, "404": { "description": "Preference not found" } } },
      "put": { "summary": "Rename a preference", "responses": { "200": { "description": "updated" }, "400": { "description": "empty or duplicate name" }, "404": { "description": "Preference not found" } } },
      "delete": { "summary": "Delete a preference", "responses": { "200": { "description": "Preference deleted successfully" }, "404": { "description": "Preference not found" } } }
    },
    "/api/doctors": {
      "get": { "summary": "List doctors", "parameters": [ {"name":"q","in":"query","schema":{"type":"string"}}, {"name":"status","in":"query","schema":{"type":"string"}} ], "responses": { "200": { "description": "doctors" } } }
    },
    "/api/dashboard": { "get": { "summary": "Dashboard overview", "responses": { "200": { "description": "counts and recent items" } } } },
    "/api/account": { "get": { "summary": "Signed-in admin", "responses": { "200": { "description": "user" }, "401": { "description": "Unauthorized" } } } },
    "/api/uploads/banner": {
      "post": { "summary": "Upload a banner image (multipart field 'file')", "responses": { "201": { "description": "url of the stored image" }, "400": { "description": "not an image" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "security": [], "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "security": [], "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "security": [], "responses": { "200": { "description": "metrics" } } } }
  }
}`
