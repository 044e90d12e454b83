// Package policy implementa la tabla de permisos por rol. Es una tabla plana:
// no hay herencia implícita más allá de que SUPERADMIN y ADMIN pueden todo lo
// que puede USER en lecturas.
package policy

import "github.com/prevenapp/inspecciones-api/internal/domain/entity"

// Action es una operación sobre un recurso.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource identifica el tipo de recurso protegido.
type Resource string

const (
	ResourceCompany    Resource = "company"
	ResourceTemplate   Resource = "template"
	ResourceWorker     Resource = "worker"
	ResourceInspection Resource = "inspection"
	ResourceUser       Resource = "user"
)

// Actor es el usuario autenticado de la request. Se pasa explícitamente a
// cada caso de uso; nunca se lee de estado global.
type Actor struct {
	ID        string
	Role      string
	CompanyID string
}

// Authenticated informa si el actor proviene de una sesión válida.
func (a Actor) Authenticated() bool {
	return a.ID != ""
}

func (a Actor) isAdmin() bool {
	return a.Role == entity.RoleAdmin || a.Role == entity.RoleSuperAdmin
}

func (a Actor) isSuperAdmin() bool {
	return a.Role == entity.RoleSuperAdmin
}

// Can evalúa la tabla de permisos.
//
//   - Empresas y plantillas: crear/mutar requiere ADMIN o SUPERADMIN.
//   - Usuarios: administración completa solo SUPERADMIN; la lista la leen los
//     administradores.
//   - Trabajadores e inspecciones: cualquier usuario autenticado (decisión de
//     producto: todo el personal gestiona trabajadores y ejecuta inspecciones).
func Can(actor Actor, action Action, resource Resource) bool {
	if !actor.Authenticated() {
		return false
	}
	switch resource {
	case ResourceCompany, ResourceTemplate:
		if action == ActionRead {
			return true
		}
		return actor.isAdmin()
	case ResourceWorker, ResourceInspection:
		return true
	case ResourceUser:
		if action == ActionRead {
			return actor.isAdmin()
		}
		return actor.isSuperAdmin()
	}
	return false
}

// CanUpdateOwnName permite a cualquier usuario autenticado cambiar su propio
// nombre, sin importar el rol.
func CanUpdateOwnName(actor Actor) bool {
	return actor.Authenticated()
}

// CanChangeEmailOrRole: solo un SUPERADMIN puede cambiar el email o el rol de
// cualquier usuario, incluido él mismo.
func CanChangeEmailOrRole(actor Actor) bool {
	return actor.isSuperAdmin()
}

// CanDeleteUser niega siempre la autoeliminación (protege contra quedarse sin
// acceso por accidente); para terceros exige SUPERADMIN.
func CanDeleteUser(actor Actor, targetUserID string) bool {
	if actor.ID == targetUserID {
		return false
	}
	return actor.isSuperAdmin()
}
