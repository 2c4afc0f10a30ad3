// Package docs berisi spesifikasi OpenAPI yang disajikan di /swagger.
// Regenerasi dengan: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/model.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MutationResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/validation.Errors"}}
                }
            }
        },
        "/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}}}
            }
        },
        "/user": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "User yang sedang login",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "properties": {"data": {"$ref": "#/definitions/model.MeResponse"}}}}}
            }
        },
        "/statistik": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["statistik"],
                "summary": "Ringkasan dashboard",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.DataResponse"}}}
            }
        },
        "/balita": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["balita"],
                "summary": "Daftar balita",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "status_gizi", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Paginated"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["balita"],
                "summary": "Tambah balita",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.MutationResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/validation.Errors"}}
                }
            }
        },
        "/balita/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["balita"],
                "summary": "Export balita ke Excel",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/balita/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["balita"], "summary": "Detail balita", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["balita"], "summary": "Ubah balita", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["balita"], "summary": "Hapus balita", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/balita/{id}/kartu": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["balita"], "summary": "Kartu balita (PDF)", "produces": ["application/pdf"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}}
        },
        "/ibu-hamil": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["ibu-hamil"], "summary": "Daftar ibu hamil", "parameters": [{"type": "string", "name": "search", "in": "query"}, {"type": "string", "name": "status_kehamilan", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Paginated"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["ibu-hamil"], "summary": "Tambah ibu hamil", "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/ibu-hamil/export": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["ibu-hamil"], "summary": "Export ibu hamil ke Excel", "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}}
        },
        "/ibu-hamil/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["ibu-hamil"], "summary": "Detail ibu hamil", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["ibu-hamil"], "summary": "Ubah ibu hamil", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["ibu-hamil"], "summary": "Hapus ibu hamil", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/ibu-hamil/{id}/kartu": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["ibu-hamil"], "summary": "Kartu ibu hamil (PDF)", "produces": ["application/pdf"], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}}
        },
        "/jadwal": {
            "get": {"tags": ["jadwal"], "summary": "Daftar jadwal", "parameters": [{"type": "string", "name": "search", "in": "query"}, {"type": "string", "name": "jenis", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Paginated"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["jadwal"], "summary": "Tambah jadwal", "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/jadwal/upcoming": {
            "get": {"tags": ["jadwal"], "summary": "Jadwal mulai hari ini", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.DataResponse"}}}}
        },
        "/jadwal/{id}": {
            "get": {"tags": ["jadwal"], "summary": "Detail jadwal", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["jadwal"], "summary": "Ubah jadwal", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["jadwal"], "summary": "Hapus jadwal", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/pengaduan": {
            "get": {"tags": ["pengaduan"], "summary": "Daftar pengaduan", "parameters": [{"type": "string", "name": "search", "in": "query"}, {"type": "string", "name": "status", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Paginated"}}}},
            "post": {"tags": ["pengaduan"], "summary": "Kirim pengaduan", "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/pengaduan/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["pengaduan"], "summary": "Detail pengaduan", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["pengaduan"], "summary": "Ubah status pengaduan", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["pengaduan"], "summary": "Hapus pengaduan", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/pengaduan/{id}/respond": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["pengaduan"], "summary": "Tanggapi pengaduan", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Daftar user", "parameters": [{"type": "string", "name": "search", "in": "query"}, {"type": "string", "name": "role", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Paginated"}}, "403": {"description": "Forbidden"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Tambah user", "responses": {"201": {"description": "Created"}}}
        },
        "/users/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Ubah user", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Hapus user", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}
        },
        "/notifikasi": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["notifikasi"], "summary": "Daftar outbox email", "parameters": [{"type": "string", "name": "status", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Paginated"}}}}
        },
        "/notifikasi/{id}/retry": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["notifikasi"], "summary": "Kirim ulang notifikasi gagal", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        }
    },
    "definitions": {
        "model.LoginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "model.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "kader"]},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "model.MeResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/model.User"}}
        },
        "response.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "response.DataResponse": {
            "type": "object",
            "properties": {"data": {}}
        },
        "response.MutationResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "data": {}}
        },
        "response.Paginated": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {}},
                "current_page": {"type": "integer"},
                "per_page": {"type": "integer"},
                "total": {"type": "integer"},
                "last_page": {"type": "integer"},
                "from": {"type": "integer"},
                "to": {"type": "integer"}
            }
        },
        "validation.Errors": {
            "type": "object",
            "additionalProperties": {"type": "array", "items": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Posyandu Desa API",
	Description:      "REST API pencatatan balita, ibu hamil, jadwal dan pengaduan posyandu desa.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
