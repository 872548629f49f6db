package domain

type Role string

const (
	RoleAdministrador Role = "administrador"
	RoleCoordinador   Role = "coordinador"
	RoleProfesor      Role = "profesor"
	RoleEstudiante    Role = "estudiante"
)

// ValidRoles is the canonical set of accepted role strings.
var ValidRoles = map[string]bool{
	"administrador": true, "coordinador": true,
	"profesor": true, "estudiante": true,
}

type WorkPlanStatus string

const (
	PlanDraft    WorkPlanStatus = "draft"
	PlanApproved WorkPlanStatus = "approved"
	PlanSigned   WorkPlanStatus = "signed"
)

type VinculationType string

const (
	VinculationPlanta    VinculationType = "planta"
	VinculationOcasional VinculationType = "ocasional"
	VinculationCatedra   VinculationType = "catedra"
)

// DefaultDedication returns the default weekly dedication hours for a
// vinculation type. Unknown types default to the lowest dedication.
func (v VinculationType) DefaultDedication() int {
	switch v {
	case VinculationPlanta:
		return 40
	case VinculationOcasional:
		return 30
	default:
		return 20
	}
}

// PlanBlock identifies one of the six activity blocks of a work plan.
type PlanBlock string

const (
	BlockDocencia      PlanBlock = "docencia"
	BlockApoyoDocencia PlanBlock = "apoyo_docencia"
	BlockTrabajosGrado PlanBlock = "trabajos_grado"
	BlockInvestigacion PlanBlock = "investigacion"
	BlockPDI           PlanBlock = "pdi"
	BlockGestion       PlanBlock = "gestion"
)

// PlanBlocks lists the blocks in presentation order.
var PlanBlocks = []PlanBlock{
	BlockDocencia, BlockApoyoDocencia, BlockTrabajosGrado,
	BlockInvestigacion, BlockPDI, BlockGestion,
}

// CatalogKind identifies a simple reference catalog.
type CatalogKind string

const (
	CatalogActivityType      CatalogKind = "activity_type"
	CatalogDeliveryForm      CatalogKind = "delivery_form"
	CatalogVerificationMeans CatalogKind = "verification_means"
	CatalogPDIAction         CatalogKind = "pdi_action"
	CatalogImprovementAction CatalogKind = "improvement_action"
)

// CatalogKinds lists the simple catalogs in presentation order.
var CatalogKinds = []CatalogKind{
	CatalogActivityType, CatalogDeliveryForm, CatalogVerificationMeans,
	CatalogPDIAction, CatalogImprovementAction,
}

// CatalogPrefixes maps each simple catalog kind to its id prefix.
var CatalogPrefixes = map[CatalogKind]string{
	CatalogActivityType:      "ACT",
	CatalogDeliveryForm:      "ENT",
	CatalogVerificationMeans: "VER",
	CatalogPDIAction:         "PDI",
	CatalogImprovementAction: "MEJ",
}
