// Package docs registra la definición OpenAPI que sirve /swagger/*.
// Se regenera con `swag init -g cmd/api/main.go`.
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
        "/health": {"get": {"tags": ["health"], "summary": "Liveness", "responses": {"200": {"description": "ok"}}}},
        "/owners": {
            "get": {"tags": ["owners"], "summary": "Listar dueños", "parameters": [{"type": "boolean", "name": "unique", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["owners"], "summary": "Registrar dueño", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/owners/{ownerID}": {"get": {"tags": ["owners"], "summary": "Obtener dueño", "parameters": [{"type": "string", "name": "ownerID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/owners/{ownerID}/pets": {"post": {"tags": ["owners"], "summary": "Agregar mascota", "parameters": [{"type": "string", "name": "ownerID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}},
        "/owners/{ownerID}/reminders": {"get": {"tags": ["owners"], "summary": "Plan de recordatorios", "parameters": [{"type": "string", "name": "ownerID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/vets": {"get": {"tags": ["vets"], "summary": "Listar veterinarios", "parameters": [{"type": "string", "name": "specialty", "in": "query"}, {"type": "boolean", "name": "available", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/medications": {"get": {"tags": ["medications"], "summary": "Listar medicamentos", "responses": {"200": {"description": "OK"}}}},
        "/medications/promoted": {"get": {"tags": ["medications"], "summary": "Medicamentos en promoción", "responses": {"200": {"description": "OK"}}}},
        "/medications/{name}/sell": {"post": {"tags": ["medications"], "summary": "Vender", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/medications/{name}/restock": {"post": {"tags": ["medications"], "summary": "Reponer stock", "parameters": [{"type": "string", "name": "name", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/stock/level": {"get": {"tags": ["promotions"], "summary": "Nivel de stock", "parameters": [{"type": "integer", "name": "quantity", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/orders": {
            "get": {"tags": ["orders"], "summary": "Listar pedidos", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["orders"], "summary": "Crear pedido", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/orders/merge": {"post": {"tags": ["orders"], "summary": "Combinar pedidos", "responses": {"201": {"description": "Created"}}}},
        "/orders/{orderID}": {"get": {"tags": ["orders"], "summary": "Obtener pedido", "parameters": [{"type": "integer", "name": "orderID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/orders/{orderID}/summary": {"get": {"tags": ["orders"], "summary": "Resumen del pedido", "parameters": [{"type": "integer", "name": "orderID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/orders/{orderID}/lines": {"post": {"tags": ["orders"], "summary": "Agregar línea", "parameters": [{"type": "integer", "name": "orderID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}},
        "/orders/{orderID}/process": {"post": {"tags": ["orders"], "summary": "Procesar pedido", "parameters": [{"type": "integer", "name": "orderID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/promotions": {"get": {"tags": ["promotions"], "summary": "Tabla de promociones", "responses": {"200": {"description": "OK"}}}},
        "/promotions/active": {"get": {"tags": ["promotions"], "summary": "Promoción vigente", "parameters": [{"type": "string", "name": "date", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/promotions/volume": {"get": {"tags": ["promotions"], "summary": "Descuento por volumen", "responses": {"200": {"description": "OK"}}}},
        "/promotions/price": {"get": {"tags": ["promotions"], "summary": "Precio con descuentos", "responses": {"200": {"description": "OK"}}}},
        "/visits": {
            "get": {"tags": ["visits"], "summary": "Listar consultas", "parameters": [{"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["visits"], "summary": "Registrar consulta", "responses": {"201": {"description": "Created"}}}
        },
        "/visits/stats": {"get": {"tags": ["visits"], "summary": "Estadísticas", "responses": {"200": {"description": "OK"}}}},
        "/visits/report": {"get": {"tags": ["visits"], "summary": "Reporte de texto", "responses": {"200": {"description": "OK"}}}},
        "/visits/cost": {"get": {"tags": ["visits"], "summary": "Cotizar consulta", "responses": {"200": {"description": "OK"}}}},
        "/summary": {"get": {"tags": ["summary"], "summary": "Resumen de la clínica", "responses": {"200": {"description": "OK"}}}},
        "/summary/refresh": {"post": {"tags": ["summary"], "summary": "Recalcular resumen (con demora)", "responses": {"202": {"description": "Accepted"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Vet Clinic API",
	Description:      "Dueños, mascotas, consultas, medicamentos, pedidos y promociones de la clínica.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
