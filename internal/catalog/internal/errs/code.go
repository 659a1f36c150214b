package errs

var (
	SystemError      = ErrorCode{Code: 517001, Msg: "系统错误"}
	ProductNotFound  = ErrorCode{Code: 517002, Msg: "商品不存在"}
	CategoryNotFound = ErrorCode{Code: 517003, Msg: "分类不存在"}
	DistrictNotFound = ErrorCode{Code: 517004, Msg: "配送区域不存在"}
	InvalidProduct   = ErrorCode{Code: 517005, Msg: "商品信息不合法"}
	InvalidCategory  = ErrorCode{Code: 517006, Msg: "分类信息不合法"}
	InvalidDistrict  = ErrorCode{Code: 517007, Msg: "配送区域信息不合法"}
	CategoryInUse    = ErrorCode{Code: 517008, Msg: "分类下还有商品"}
	DuplicateName    = ErrorCode{Code: 517009, Msg: "名称重复"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
