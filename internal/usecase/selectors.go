package usecase

// Selectors and labels as the online-banking frontend renders them. Labels
// are clicked by visible text because the portal's markup changes between
// sessions while its wording does not.
const (
	loginURL = "https://onlinebanking.bancogalicia.com.ar/login"

	selDocumentNumber = "input#DocumentNumber"
	selUsername       = "input#UserName"
	selPassword       = "input#Password"

	labelSubmitLogin  = "Iniciar sesión"
	labelAccountsList = "Cuentas"
	labelAllMovements = "Todos los movimientos"
	labelMovements    = "Movimientos"
	labelDebitFilter  = "Egresos de dinero"
)

// dashboardKeywords are logged at debug level after login to help map what
// the dashboard surfaced this session.
var dashboardKeywords = []string{
	"Comprobantes", "Retenciones", "Impuestos", "Ingresos Brutos", "Descargar",
}
