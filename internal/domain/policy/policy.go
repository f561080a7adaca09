// Package policy concentra las decisiones de autorización por rol y propiedad.
// Son funciones puras: reciben al actor y los datos mínimos del recurso y
// devuelven una decisión; nunca consultan la base de datos. Para listados
// devuelven un Scope que los casos de uso traducen a filtros de consulta,
// de forma que un conjunto permitido vacío produce una lista vacía y no un error.
package policy

import "github.com/tu-usuario/projectflow/internal/domain/entity"

// Actor identidad mínima para decidir: id y rol del usuario autenticado.
type Actor struct {
	ID   string
	Role string
}

// Scope recorte de un listado según el rol. Cuando All es true no hay
// restricción adicional; si no, aplica exactamente uno de los campos.
type Scope struct {
	All        bool
	ManagerID  string // proyectos gestionados por este usuario (y sus filas hijas)
	AssigneeID string // tareas asignadas a este usuario
	UserID     string // filas propias del usuario (gastos)
}

// UpdateLevel nivel de edición permitido sobre un recurso.
type UpdateLevel int

const (
	UpdateNone       UpdateLevel = iota // 403
	UpdateStatusOnly                    // solo el campo status/state
	UpdateOwnFields                     // campos propios, nunca el state (gastos pre-aprobación)
	UpdateFull                          // todos los campos del rol
)

// ── Proyectos ────────────────────────────────────────────────────────────────

// ProjectScope recorte del listado de proyectos.
// team_member: solo proyectos alcanzables vía tareas asignadas.
func ProjectScope(a Actor) Scope {
	switch a.Role {
	case entity.RoleTeamMember:
		return Scope{AssigneeID: a.ID}
	case entity.RoleProjectManager:
		return Scope{ManagerID: a.ID}
	default:
		return Scope{All: true}
	}
}

// CanCreateProject admin y project_manager crean proyectos.
func CanCreateProject(a Actor) bool {
	return a.Role == entity.RoleAdmin || a.Role == entity.RoleProjectManager
}

// CanViewProject acceso de lectura a un proyecto concreto.
// hasAssignedTask indica si el actor tiene al menos una tarea asignada en él.
func CanViewProject(a Actor, managerID string, hasAssignedTask bool) bool {
	switch a.Role {
	case entity.RoleAdmin, entity.RoleSalesFinance:
		return true
	case entity.RoleProjectManager:
		return managerID == a.ID
	case entity.RoleTeamMember:
		return hasAssignedTask
	}
	return false
}

// CanManageProject actualizar o borrar un proyecto: admin, o el manager dueño.
func CanManageProject(a Actor, managerID string) bool {
	if a.Role == entity.RoleAdmin {
		return true
	}
	return a.Role == entity.RoleProjectManager && managerID == a.ID
}

// CanChangeProjectManager solo admin reasigna el manager de un proyecto.
func CanChangeProjectManager(a Actor) bool {
	return a.Role == entity.RoleAdmin
}

// ── Tareas ───────────────────────────────────────────────────────────────────

// TaskScope recorte del listado de tareas.
func TaskScope(a Actor) Scope {
	switch a.Role {
	case entity.RoleTeamMember:
		return Scope{AssigneeID: a.ID}
	case entity.RoleProjectManager:
		return Scope{ManagerID: a.ID}
	default:
		return Scope{All: true}
	}
}

// CanCreateTask admin y project_manager crean tareas.
func CanCreateTask(a Actor) bool {
	return a.Role == entity.RoleAdmin || a.Role == entity.RoleProjectManager
}

// TaskUpdateLevel nivel de edición sobre una tarea: el asignado (team_member)
// solo puede tocar status; el manager dueño del proyecto y el admin, todo.
func TaskUpdateLevel(a Actor, assigneeID, projectManagerID string) UpdateLevel {
	switch a.Role {
	case entity.RoleAdmin:
		return UpdateFull
	case entity.RoleProjectManager:
		if projectManagerID == a.ID {
			return UpdateFull
		}
		return UpdateNone
	case entity.RoleTeamMember:
		if assigneeID == a.ID {
			return UpdateStatusOnly
		}
		return UpdateNone
	}
	return UpdateNone
}

// CanDeleteTask admin, o el manager del proyecto de la tarea.
func CanDeleteTask(a Actor, projectManagerID string) bool {
	if a.Role == entity.RoleAdmin {
		return true
	}
	return a.Role == entity.RoleProjectManager && projectManagerID == a.ID
}

// ── Finanzas (órdenes, facturas, facturas de proveedor) ──────────────────────

// CanManageFinancials crear/actualizar/borrar entidades financieras:
// admin y sales_finance en todos los proyectos.
func CanManageFinancials(a Actor) bool {
	return a.Role == entity.RoleAdmin || a.Role == entity.RoleSalesFinance
}

// CanCreateInvoice además de finanzas, el manager puede disparar la factura
// de un proyecto propio.
func CanCreateInvoice(a Actor, projectManagerID string) bool {
	if CanManageFinancials(a) {
		return true
	}
	return a.Role == entity.RoleProjectManager && projectManagerID == a.ID
}

// ── Gastos ───────────────────────────────────────────────────────────────────

// ExpenseScope recorte del listado de gastos.
func ExpenseScope(a Actor) Scope {
	switch a.Role {
	case entity.RoleTeamMember:
		return Scope{UserID: a.ID}
	case entity.RoleProjectManager:
		return Scope{ManagerID: a.ID}
	default:
		return Scope{All: true}
	}
}

// ExpenseUpdateLevel nivel de edición sobre un gasto:
//   - team_member: solo los propios y solo antes de approved/rejected,
//     nunca el campo state.
//   - project_manager: gastos de proyectos propios (puede aprobar/rechazar).
//   - admin y sales_finance: cualquiera.
func ExpenseUpdateLevel(a Actor, ownerID, state, projectManagerID string) UpdateLevel {
	switch a.Role {
	case entity.RoleAdmin, entity.RoleSalesFinance:
		return UpdateFull
	case entity.RoleProjectManager:
		if projectManagerID == a.ID {
			return UpdateFull
		}
		return UpdateNone
	case entity.RoleTeamMember:
		if ownerID != a.ID {
			return UpdateNone
		}
		if state == entity.ExpenseStateApproved || state == entity.ExpenseStateRejected {
			return UpdateNone
		}
		return UpdateOwnFields
	}
	return UpdateNone
}

// ── Usuarios y habilidades ───────────────────────────────────────────────────

// CanManageUsers crear o borrar usuarios: solo admin.
func CanManageUsers(a Actor) bool {
	return a.Role == entity.RoleAdmin
}

// CanUpdateUser un usuario edita su propio perfil; admin edita cualquiera.
func CanUpdateUser(a Actor, targetID string) bool {
	return a.Role == entity.RoleAdmin || a.ID == targetID
}

// CanChangeRole cambiar el rol de otro usuario: solo admin, y nunca el propio.
func CanChangeRole(a Actor, targetID string) bool {
	return a.Role == entity.RoleAdmin && a.ID != targetID
}

// CanManageSkills un usuario gestiona sus propias habilidades; admin las de todos.
func CanManageSkills(a Actor, targetUserID string) bool {
	return a.Role == entity.RoleAdmin || a.ID == targetUserID
}

// CanFilterByUser filtros explícitos user_id/assignee_id/manager_id en listados:
// los roles amplios pueden; team_member ya está recortado a sí mismo.
func CanFilterByUser(a Actor) bool {
	return a.Role != entity.RoleTeamMember
}
