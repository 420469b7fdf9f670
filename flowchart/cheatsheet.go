// SPDX-License-Identifier: MIT

package flowchart

import "sync"

// Node IDs of the built-in cheat sheet.
const (
	CheatStart                   = "start"
	CheatSampleSize              = "sample_size"
	CheatMoreData                = "more_data"
	CheatPredictCategory         = "predict_category"
	CheatPredictQuantity         = "predict_quantity"
	CheatLabeledData             = "labeled_data"
	CheatClassification          = "classification"
	CheatRegression              = "regression"
	CheatClustering              = "clustering"
	CheatJustLooking             = "just_looking"
	CheatDimensionalityReduction = "dimensionality_reduction"
	CheatToughLuck               = "tough_luck"
)

var (
	cheatOnce  sync.Once
	cheatChart *Chart
)

// CheatSheet returns the built-in machine-learning algorithm selection chart,
// labeled in English with Chinese secondary labels. It is acyclic and every
// node is reachable from start. The same *Chart is returned on every call.
func CheatSheet() *Chart {
	cheatOnce.Do(func() {
		cheatChart = MustNew(cheatSheetNodes(), WithStrict())
	})
	return cheatChart
}

func cheatSheetNodes() []Node {
	must := func(n Node, err error) Node {
		if err != nil {
			panic(err)
		}
		return n
	}
	desc := func(en, zh string) []NodeOption {
		return []NodeOption{WithDescription(en), WithDescriptionSecondary(zh)}
	}

	return []Node{
		must(NewStart(CheatStart, "START", "开始",
			append(desc("Starting point for ML algorithm selection", "机器学习算法选择起点"),
				WithNext(CheatSampleSize))...)),
		must(NewDecision(CheatSampleSize, "> 50 samples?", "> 50 样本？",
			CheatPredictCategory, CheatMoreData,
			desc("Check if dataset is large enough", "检查数据集大小是否足够")...)),
		must(NewTerminal(CheatMoreData, "Get More Data", "获取更多数据",
			desc("Sample size too small, collect more data", "样本量太小，需要收集更多数据")...)),
		must(NewDecision(CheatPredictCategory, "Predicting Category?", "预测类别？",
			CheatLabeledData, CheatPredictQuantity,
			desc("Determine if it's a classification problem", "确定是分类问题还是其他类型")...)),
		must(NewDecision(CheatPredictQuantity, "Predicting Quantity?", "预测数值？",
			CheatRegression, CheatJustLooking,
			desc("Determine if it's a regression problem", "确定是回归问题")...)),
		must(NewDecision(CheatLabeledData, "Labeled Data?", "有标签数据？",
			CheatClassification, CheatClustering,
			desc("Check if data has labels", "检查数据是否有标签")...)),
		must(NewCategory(CheatClassification, "Classification", "分类",
			desc("Assign data to predefined categories", "将数据分到预定义类别中")...)),
		must(NewCategory(CheatRegression, "Regression", "回归",
			desc("Predict continuous numerical output", "预测连续数值输出")...)),
		must(NewCategory(CheatClustering, "Clustering", "聚类",
			desc("Discover natural groupings in data", "发现数据中的自然分组")...)),
		must(NewDecision(CheatJustLooking, "Just Looking?", "只是探索？",
			CheatDimensionalityReduction, CheatToughLuck,
			desc("Unsupervised exploratory analysis", "无监督探索性分析")...)),
		must(NewCategory(CheatDimensionalityReduction, "Dimensionality Reduction", "降维",
			desc("Reduce feature count while preserving information", "减少特征数量同时保留信息")...)),
		must(NewTerminal(CheatToughLuck, "Tough Luck", "运气不好",
			desc("May need to reconsider the problem", "可能需要重新思考问题")...)),
	}
}
