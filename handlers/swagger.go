package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRouter) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>campuslink — Swagger</title>
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

// OpenAPI document for the record endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "campuslink", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Created": { "type": "object", "properties": { "id": { "type": "string" } } },
      "Error": { "type": "object", "properties": { "error": { "type": "string" }, "message": { "type": "string" }, "fields": { "type": "array", "items": { "type": "object", "properties": { "field": { "type": "string" }, "rule": { "type": "string" } } } } } },
      "User": { "type": "object", "required": ["name", "email", "role"], "properties": { "name": { "type": "string" }, "email": { "type": "string", "format": "email" }, "role": { "type": "string", "enum": ["student", "professor", "company"] }, "college": { "type": "string" }, "department": { "type": "string" }, "company_name": { "type": "string" }, "headline": { "type": "string" }, "verified": { "type": "boolean" } } },
      "Post": { "type": "object", "required": ["type", "title", "content", "created_by"], "properties": { "type": { "type": "string", "enum": ["question", "internship_request", "discussion"] }, "title": { "type": "string" }, "content": { "type": "string" }, "tags": { "type": "array", "items": { "type": "string" } }, "created_by": { "type": "string" } } },
      "Comment": { "type": "object", "required": ["post_id", "content", "created_by"], "properties": { "post_id": { "type": "string" }, "content": { "type": "string" }, "created_by": { "type": "string" }, "parent_id": { "type": "string" } } },
      "Offer": { "type": "object", "required": ["title", "description", "created_by"], "properties": { "title": { "type": "string" }, "description": { "type": "string" }, "location": { "type": "string" }, "stipend": { "type": "string" }, "post_id": { "type": "string" }, "created_by": { "type": "string" } } }
    }
  },
  "paths": {
    "/api/users": {
      "post": { "summary": "Create a user", "requestBody": { "content": { "application/json": { "schema": { "$ref": "#/components/schemas/User" } } } }, "responses": { "200": { "description": "created" }, "400": { "description": "validation_error" } } },
      "get": { "summary": "List users", "parameters": [ { "name": "role", "in": "query", "schema": { "type": "string" } }, { "name": "limit", "in": "query", "schema": { "type": "integer", "minimum": 1, "maximum": 200, "default": 200 } } ], "responses": { "200": { "description": "users in store order" } } }
    },
    "/api/posts": {
      "post": { "summary": "Create a post", "requestBody": { "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Post" } } } }, "responses": { "200": { "description": "created" }, "400": { "description": "validation_error" } } },
      "get": { "summary": "List posts newest first", "parameters": [ { "name": "type", "in": "query", "schema": { "type": "string" } }, { "name": "tag", "in": "query", "schema": { "type": "string" } }, { "name": "created_by", "in": "query", "schema": { "type": "string" } }, { "name": "limit", "in": "query", "schema": { "type": "integer", "minimum": 1, "maximum": 200, "default": 50 } } ], "responses": { "200": { "description": "posts" } } }
    },
    "/api/comments": {
      "post": { "summary": "Create a comment", "requestBody": { "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Comment" } } } }, "responses": { "200": { "description": "created" }, "400": { "description": "validation_error" } } },
      "get": { "summary": "List comments of a post oldest first", "parameters": [ { "name": "post_id", "in": "query", "required": true, "schema": { "type": "string" } }, { "name": "limit", "in": "query", "schema": { "type": "integer", "minimum": 1, "maximum": 500, "default": 100 } } ], "responses": { "200": { "description": "comments" }, "400": { "description": "post_id missing" } } }
    },
    "/api/offers": {
      "post": { "summary": "Create an offer", "requestBody": { "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Offer" } } } }, "responses": { "200": { "description": "created" }, "400": { "description": "validation_error" } } },
      "get": { "summary": "List offers newest first", "parameters": [ { "name": "post_id", "in": "query", "schema": { "type": "string" } }, { "name": "created_by", "in": "query", "schema": { "type": "string" } }, { "name": "limit", "in": "query", "schema": { "type": "integer", "minimum": 1, "maximum": 300, "default": 100 } } ], "responses": { "200": { "description": "offers" } } }
    },
    "/test": { "get": { "summary": "Database diagnostics", "responses": { "200": { "description": "diagnostic report" } } } },
    "/health": { "get": { "summary": "Liveness", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness", "responses": { "200": { "description": "ready" }, "503": { "description": "a dependency is unreachable" } } } }
  }
}`
