package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "e-College API",
        "description": "Faculty, department and course catalogue service",
        "version": "1.0.0"
    },
    "basePath": "/ecollege/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Faculties",
            "description": "Faculties with their departments"
        },
        {
            "name": "Departments",
            "description": "Departments with their courses"
        },
        {
            "name": "Courses",
            "description": "Courses offered by departments"
        }
    ],
    "paths": {
        "/": {
            "get": {
                "tags": [
                    "Meta"
                ],
                "summary": "API greeting",
                "responses": {
                    "200": {
                        "description": "This is the official e-College API"
                    }
                }
            }
        },
        "/faculties": {
            "get": {
                "tags": [
                    "Faculties"
                ],
                "summary": "List faculties",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/FacultyResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Faculties"
                ],
                "summary": "Create faculty",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateFacultyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Resource Successfully Created",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "422": {
                        "description": "Inoperable Request",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    }
                }
            }
        },
        "/faculties/{id}": {
            "get": {
                "tags": [
                    "Faculties"
                ],
                "summary": "Get by id",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/FacultyResponse"
                        }
                    },
                    "404": {
                        "description": "Resource Not Found",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Faculties"
                ],
                "summary": "Update supplied fields",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateFacultyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Resource Updated",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "404": {
                        "description": "Resource Not Found",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "422": {
                        "description": "Inoperable Request",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Faculties"
                ],
                "summary": "Delete by id",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Resource Deleted",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "500": {
                        "description": "Server Error",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    }
                }
            }
        },
        "/departments": {
            "get": {
                "tags": [
                    "Departments"
                ],
                "summary": "List departments",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/DepartmentResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Departments"
                ],
                "summary": "Create department",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateDepartmentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Resource Successfully Created",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "422": {
                        "description": "Inoperable Request",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    }
                }
            }
        },
        "/departments/{id}": {
            "get": {
                "tags": [
                    "Departments"
                ],
                "summary": "Get by id",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/DepartmentResponse"
                        }
                    },
                    "404": {
                        "description": "Resource Not Found",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Departments"
                ],
                "summary": "Update supplied fields",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateDepartmentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Resource Updated",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "404": {
                        "description": "Resource Not Found",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "422": {
                        "description": "Inoperable Request",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Departments"
                ],
                "summary": "Delete by id",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Resource Deleted",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "500": {
                        "description": "Server Error",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    }
                }
            }
        },
        "/courses": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "List courses",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Course"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "Create course",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateCourseRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Resource Successfully Created",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "422": {
                        "description": "Inoperable Request",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    }
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "Get by id",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Course"
                        }
                    },
                    "404": {
                        "description": "Resource Not Found",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Courses"
                ],
                "summary": "Update supplied fields",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateCourseRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Resource Updated",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "404": {
                        "description": "Resource Not Found",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "422": {
                        "description": "Inoperable Request",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Courses"
                ],
                "summary": "Delete by id",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Resource Deleted",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    },
                    "500": {
                        "description": "Server Error",
                        "schema": {
                            "$ref": "#/definitions/MessageBody"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "MessageBody": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "Faculty": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "faculty_name": {
                    "type": "string"
                },
                "faculty_dean": {
                    "type": "string"
                },
                "faculty_email": {
                    "type": "string"
                }
            }
        },
        "Department": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "dept_name": {
                    "type": "string"
                },
                "dept_head": {
                    "type": "string"
                },
                "dept_email": {
                    "type": "string"
                },
                "faculty_id": {
                    "type": "integer"
                }
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "course_name": {
                    "type": "string"
                },
                "course_adviser": {
                    "type": "string"
                },
                "course_duration": {
                    "type": "string"
                },
                "department_id": {
                    "type": "integer"
                }
            }
        },
        "FacultyResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "faculty_name": {
                    "type": "string"
                },
                "faculty_dean": {
                    "type": "string"
                },
                "faculty_email": {
                    "type": "string"
                },
                "departments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/Department"
                    }
                }
            }
        },
        "DepartmentResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "dept_name": {
                    "type": "string"
                },
                "dept_head": {
                    "type": "string"
                },
                "dept_email": {
                    "type": "string"
                },
                "faculty_id": {
                    "type": "integer"
                },
                "courses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/Course"
                    }
                }
            }
        },
        "CreateFacultyRequest": {
            "type": "object",
            "properties": {
                "faculty_name": {
                    "type": "string"
                },
                "faculty_dean": {
                    "type": "string"
                },
                "faculty_email": {
                    "type": "string"
                }
            },
            "required": [
                "faculty_name",
                "faculty_dean",
                "faculty_email"
            ]
        },
        "UpdateFacultyRequest": {
            "type": "object",
            "properties": {
                "faculty_name": {
                    "type": "string"
                },
                "faculty_dean": {
                    "type": "string"
                },
                "faculty_email": {
                    "type": "string"
                }
            }
        },
        "CreateDepartmentRequest": {
            "type": "object",
            "properties": {
                "dept_name": {
                    "type": "string"
                },
                "dept_head": {
                    "type": "string"
                },
                "dept_email": {
                    "type": "string"
                },
                "faculty_id": {
                    "type": "integer"
                }
            },
            "required": [
                "dept_name",
                "dept_head",
                "dept_email",
                "faculty_id"
            ]
        },
        "UpdateDepartmentRequest": {
            "type": "object",
            "properties": {
                "dept_name": {
                    "type": "string"
                },
                "dept_head": {
                    "type": "string"
                },
                "dept_email": {
                    "type": "string"
                },
                "faculty_id": {
                    "type": "integer"
                }
            }
        },
        "CreateCourseRequest": {
            "type": "object",
            "properties": {
                "course_name": {
                    "type": "string"
                },
                "course_adviser": {
                    "type": "string"
                },
                "course_duration": {
                    "type": "string"
                },
                "department_id": {
                    "type": "integer"
                }
            },
            "required": [
                "course_name",
                "course_adviser",
                "course_duration",
                "department_id"
            ]
        },
        "UpdateCourseRequest": {
            "type": "object",
            "properties": {
                "course_name": {
                    "type": "string"
                },
                "course_adviser": {
                    "type": "string"
                },
                "course_duration": {
                    "type": "string"
                },
                "department_id": {
                    "type": "integer"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
