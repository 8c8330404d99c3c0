// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/v1/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/v1/auth/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Stored session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}}}
            }
        },
        "/v1/channels": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["channels"],
                "summary": "List channels",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.channelListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["channels"],
                "summary": "Create a channel",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createChannelRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.channelResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/channels/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["channels"],
                "summary": "Get a channel",
                "parameters": [{"type": "string", "description": "Channel id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.channelResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/channels/{id}/subscribe": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["channels"],
                "summary": "Subscribe to a channel",
                "parameters": [
                    {"type": "string", "description": "Replays with the same key are not charged again", "name": "Idempotency-Key", "in": "header"},
                    {"type": "string", "description": "Channel id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.walletResponse"}},
                    "402": {"description": "Payment Required", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/wallet": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Wallet balance",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.walletResponse"}}}
            }
        },
        "/v1/wallet/recharge": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Recharge wallet",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.walletResponse"}}}
            }
        },
        "/v1/announcements": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["announcements"],
                "summary": "List announcements",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.announcementListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["announcements"],
                "summary": "Publish an announcement",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.publishAnnouncementRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.announcementResponse"}}}
            }
        },
        "/v1/professors/{id}/standing": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["professors"],
                "summary": "Professor standing",
                "parameters": [{"type": "string", "description": "Professor id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.standingResponse"}}}
            }
        },
        "/v1/admin/professors/{id}/approve": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Approve a professor",
                "parameters": [{"type": "string", "description": "Professor id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}}}
            }
        },
        "/v1/assistant/ask": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["assistant"],
                "summary": "Ask the assistant",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.askRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.askResponse"}}}
            }
        },
        "/v1/preferences/theme": {
            "get": {
                "produces": ["application/json"],
                "tags": ["preferences"],
                "summary": "Get theme",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.themeResponse"}}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["preferences"],
                "summary": "Set theme",
                "security": [{"BearerAuth": []}],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.themeRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.themeResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "firstName", "password", "role"],
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "role": {"type": "string", "enum": ["student", "professor"]}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.standingResponse": {
            "type": "object",
            "properties": {
                "professorId": {"type": "string"},
                "studentCount": {"type": "integer"},
                "tier": {"type": "string"},
                "aura": {"type": "string"}
            }
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "walletBalance": {"type": "integer"},
                "studentCount": {"type": "integer"},
                "isApproved": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "standing": {"$ref": "#/definitions/handler.standingResponse"}
            }
        },
        "handler.authResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/handler.userResponse"}}
        },
        "handler.createChannelRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "price": {"type": "integer", "minimum": 0}}
        },
        "handler.channelResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "professorId": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "integer"},
                "subscriberCount": {"type": "integer"},
                "subscribers": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string"}
            }
        },
        "handler.channelListResponse": {
            "type": "object",
            "properties": {"channels": {"type": "array", "items": {"$ref": "#/definitions/handler.channelResponse"}}}
        },
        "handler.publishAnnouncementRequest": {
            "type": "object",
            "required": ["content", "title"],
            "properties": {"title": {"type": "string"}, "content": {"type": "string"}, "tag": {"type": "string"}}
        },
        "handler.announcementResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "professorId": {"type": "string"},
                "professorName": {"type": "string"},
                "title": {"type": "string"},
                "content": {"type": "string"},
                "tag": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "handler.announcementListResponse": {
            "type": "object",
            "properties": {"announcements": {"type": "array", "items": {"$ref": "#/definitions/handler.announcementResponse"}}}
        },
        "handler.walletResponse": {
            "type": "object",
            "properties": {
                "studentId": {"type": "string"},
                "walletBalance": {"type": "integer"},
                "channelId": {"type": "string"},
                "alreadyProcessed": {"type": "boolean"}
            }
        },
        "handler.askRequest": {"type": "object", "required": ["question"], "properties": {"question": {"type": "string"}}},
        "handler.askResponse": {"type": "object", "properties": {"answer": {"type": "string"}}},
        "handler.themeRequest": {"type": "object", "required": ["theme"], "properties": {"theme": {"type": "string", "enum": ["dark", "light"]}}},
        "handler.themeResponse": {"type": "object", "properties": {"theme": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "WAY campus API",
	Description:      "Channels, wallet, announcements and assistant for the WAY university platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
