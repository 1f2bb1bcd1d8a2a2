// Copyright 2025-2026 肖其顿 (XIAO QI DUN)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package commands 定义 barcodegen 命令行
//
// 命令
//
//   - barcodegen        从XML目录生成条码PDF (-o 输出, -t URL|FILE, -p 地址或路径)
//   - barcodegen synth  由原始条码字符串生成示例目录XML
//   - barcodegen version 打印版本号
//
// 所有错误输出一行到标准错误并以状态码 1 退出, 参数错误额外打印用法
package commands
