package errs

var (
	SystemError             = ErrorCode{Code: 518001, Msg: "系统错误"}
	InvalidOrder            = ErrorCode{Code: 518002, Msg: "订单信息不完整"}
	ProductNotFound         = ErrorCode{Code: 518003, Msg: "商品不存在"}
	InsufficientStock       = ErrorCode{Code: 518004, Msg: "库存不足"}
	PriceMismatch           = ErrorCode{Code: 518005, Msg: "商品价格已变化，请刷新后重试"}
	InvalidDistrict         = ErrorCode{Code: 518006, Msg: "该区域暂不支持配送"}
	ShippingChargeMismatch  = ErrorCode{Code: 518007, Msg: "运费已变化，请刷新后重试"}
	TotalMismatch           = ErrorCode{Code: 518008, Msg: "订单金额不一致"}
	OrderNotFound           = ErrorCode{Code: 518009, Msg: "订单不存在"}
	AlreadyDispatched       = ErrorCode{Code: 518010, Msg: "订单已经发货"}
	IllegalStatusTransition = ErrorCode{Code: 518011, Msg: "订单状态不允许该操作"}
	OrderStatusConflict     = ErrorCode{Code: 518012, Msg: "订单状态已被修改，请刷新后重试"}
	DuplicateRequest        = ErrorCode{Code: 518013, Msg: "请勿重复提交订单"}
	UnknownProvider         = ErrorCode{Code: 518014, Msg: "不支持的物流服务商"}
	LogisticsNotConfigured  = ErrorCode{Code: 518015, Msg: "物流服务商未配置"}
	LogisticsFailed         = ErrorCode{Code: 518016, Msg: "物流服务商下单失败"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
